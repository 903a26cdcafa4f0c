package services

import (
	"context"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
)

type StorageService interface {
	SignedReportURL(ctx context.Context, filePath string) (url string, err error)
	IsReportExist(ctx context.Context, filePath string) (isExist bool, url string)
}

type storage service

// SignedReportURL signs a download link for a stored report, honoring the
// configured expiry and falling back to 15 minutes.
func (svc *storage) SignedReportURL(_ context.Context, filePath string) (url string, err error) {
	if filePath == "" {
		return "", common.ErrFilePathEmpty
	}

	expireDuration := 15 * time.Minute
	if svc.srv.conf.Reconciliation.ResultURLExpiryTime != 0 {
		expireDuration = time.Duration(svc.srv.conf.Reconciliation.ResultURLExpiryTime) * time.Minute
	}

	return svc.srv.cloudStorage.GetSignedURL(filePath, expireDuration)
}

// IsReportExist checks the bucket for an already generated report. If it
// exists, the public url is returned alongside.
func (svc *storage) IsReportExist(ctx context.Context, filePath string) (isExist bool, url string) {
	gcsPayload := models.NewCloudStoragePayload(filePath)

	return svc.srv.cloudStorage.IsObjectExist(ctx, &gcsPayload)
}
