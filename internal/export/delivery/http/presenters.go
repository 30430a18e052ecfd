package http

import (
	"dashboard-srv/internal/export"
	"dashboard-srv/pkg/response"

	"github.com/dustin/go-humanize"
)

type exportResp struct {
	FileName  string            `json:"file_name"`
	URL       string            `json:"url"`
	Size      int64             `json:"size"`
	SizeHuman string            `json:"size_human"`
	ExpiresAt response.DateTime `json:"expires_at"`
}

func newExportResp(o export.ExportOutput) exportResp {
	return exportResp{
		FileName:  o.FileName,
		URL:       o.URL,
		Size:      o.Size,
		SizeHuman: humanize.Bytes(uint64(o.Size)),
		ExpiresAt: response.DateTime(o.ExpiresAt),
	}
}
