package chess

// MoveRecord is the minimal diff needed to take a move back.
type MoveRecord struct {
	Edge         Edge  `json:"edge"`
	Player       Turn  `json:"player"`
	Boxes        []Box `json:"boxes"`
	PlayerBefore Turn  `json:"playerBefore"`
}

type history struct {
	records []MoveRecord
}

func (h *history) push(r MoveRecord) { h.records = append(h.records, r) }

func (h *history) pop() (r MoveRecord, ok bool) {
	if len(h.records) == 0 {
		return
	}
	r = h.records[len(h.records)-1]
	h.records = h.records[:len(h.records)-1]
	return r, true
}

func (h *history) clear() { h.records = nil }

func (h *history) size() int { return len(h.records) }

func (h *history) all() []MoveRecord {
	records := make([]MoveRecord, len(h.records))
	for i, r := range h.records {
		r.Boxes = append([]Box(nil), r.Boxes...)
		records[i] = r
	}
	return records
}
