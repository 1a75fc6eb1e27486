package push

// IndexItem is the payload of the INDEX stack: a counted-loop cursor
// with an explicit step, so counted loops don't have to inflate EXEC
// with per-iteration continuations the way CODE.DO*RANGE does.
type IndexItem struct {
	Current     int64
	Destination int64
	Step        int64
}

func newIndex(destination int64) IndexItem {
	step := int64(1)
	if destination < 0 {
		step = -1
	}
	return IndexItem{Current: 0, Destination: destination, Step: step}
}

func (ix IndexItem) done() bool { return ix.Current == ix.Destination }
