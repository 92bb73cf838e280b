package notification

import (
	"fmt"
	"sync"

	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/pkg/logging"
)

type Sender interface {
	SendMessage(text string) error
}

// Forwarder relays each unread notification once.
type Forwarder struct {
	sender Sender

	mu   sync.Mutex
	seen map[int]bool
}

func NewForwarder(sender Sender) *Forwarder {
	return &Forwarder{sender: sender, seen: map[int]bool{}}
}

func (f *Forwarder) Forward(list []*models.Notification) int {
	logger := logging.GetLogger()

	f.mu.Lock()
	defer f.mu.Unlock()

	sent := 0
	for _, n := range list {
		if n.IsRead || f.seen[n.ID] {
			continue
		}
		if err := f.sender.SendMessage(fmt.Sprintf("%s\n%s", n.Title, n.Message)); err != nil {
			logger.Errorf("failed to forward notification %d: %v", n.ID, err)
			continue
		}
		f.seen[n.ID] = true
		sent++
	}
	return sent
}
