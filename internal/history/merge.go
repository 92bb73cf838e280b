package history

// Merge lays the server sub-objects of fresh over cached. Each of invoice, reservasi and
// customer is merged key by key with the server winning; everything else in cached survives.
func Merge(cached, fresh *Record) *Record {
	if cached == nil {
		return fresh.clone()
	}
	out := cached.clone()
	if fresh == nil {
		return out
	}
	out.Invoice = mergeMap(out.Invoice, fresh.Invoice)
	out.Reservasi = mergeMap(out.Reservasi, fresh.Reservasi)
	out.Customer = mergeMap(out.Customer, fresh.Customer)
	return out
}

func mergeMap(cached, fresh map[string]interface{}) map[string]interface{} {
	if fresh == nil {
		return cached
	}
	out := copyMap(cached)
	if out == nil {
		out = make(map[string]interface{}, len(fresh))
	}
	for k, v := range fresh {
		out[k] = v
	}
	return out
}
