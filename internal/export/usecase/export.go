package usecase

import (
	"bytes"
	"context"
	"fmt"

	"dashboard-srv/internal/export"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/minio"
)

// ExportExplore - Upload the explore slot as CSV and sign a download URL
func (uc *implUseCase) ExportExplore(ctx context.Context, sc model.Scope) (export.ExportOutput, error) {
	st, err := uc.dashboardUC.GetState(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.ExportExplore: dashboardUC.GetState failed: %v", err)
		return export.ExportOutput{}, err
	}
	if st.Explore == nil {
		return export.ExportOutput{}, export.ErrNothingToExport
	}

	data, err := buildExploreCSV(st.Filters, *st.Explore)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.ExportExplore: buildExploreCSV failed: %v", err)
		return export.ExportOutput{}, err
	}

	id := uc.newID()
	fileName := fmt.Sprintf("explore_%s.csv", uc.now().UTC().Format(fileTimeLayout))
	objectName := fmt.Sprintf("%s/%s/%s.csv", objectPrefix, sc.SessionID, id)

	if _, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.config.Bucket,
		ObjectName:   objectName,
		OriginalName: fileName,
		Reader:       bytes.NewReader(data),
		Size:         int64(len(data)),
		ContentType:  csvContentType,
		Metadata: map[string]string{
			"export_id":  id,
			"session_id": sc.SessionID,
		},
	}); err != nil {
		uc.l.Errorf(ctx, "export.usecase.ExportExplore: Upload failed: %v", err)
		return export.ExportOutput{}, export.ErrUploadFailed
	}

	presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.Bucket,
		ObjectName: objectName,
		Method:     minio.MethodGET,
		Expiry:     uc.config.URLExpiry,
		Headers: map[string]string{
			"response-content-disposition": fmt.Sprintf("attachment; filename=%q", fileName),
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.ExportExplore: Failed to generate presigned URL: %v", err)
		if delErr := uc.minio.DeleteFile(ctx, uc.config.Bucket, objectName); delErr != nil {
			uc.l.Warnf(ctx, "export.usecase.ExportExplore: DeleteFile %s failed: %v", objectName, delErr)
		}
		return export.ExportOutput{}, export.ErrDownloadURL
	}

	uc.l.Infof(ctx, "export.usecase.ExportExplore: exported %d bytes to %s", len(data), objectName)
	return export.ExportOutput{
		ObjectName: objectName,
		FileName:   fileName,
		URL:        presigned.URL,
		Size:       int64(len(data)),
		ExpiresAt:  presigned.ExpiresAt,
	}, nil
}
