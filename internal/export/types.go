package export

import "time"

type ExportOutput struct {
	ObjectName string
	FileName   string
	URL        string
	Size       int64
	ExpiresAt  time.Time
}
