package version

import "fmt"

const VERSION_MAJOR = 1
const VERSION_MINOR = 0
const VERSION_MICRO = 0

var version *Version

type Version struct {
	Major int
	Minor int
	Micro int
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}

// UserAgent is sent with every API request.
func (v *Version) UserAgent() string {
	return fmt.Sprintf("RestoReservasi/%s", v.String())
}

func GetVersion() *Version {
	return version
}

func init() {
	version = new(Version)
	version.Major = VERSION_MAJOR
	version.Minor = VERSION_MINOR
	version.Micro = VERSION_MICRO
}
