package provider

import "github.com/pcj/mobyprogress"

func (p *SourceProvider) writeParseProgress(current, total int) {
	if p.progress == nil {
		return
	}
	p.progress.WriteProgress(mobyprogress.Progress{
		ID:         "parse",
		Action:     "parsing sources",
		Current:    int64(current),
		Total:      int64(total),
		Units:      "files",
		LastUpdate: current == total,
	})
}
