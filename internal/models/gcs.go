package models

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

type CloudStoragePayload struct {
	Filename string
	Path     string
}

func (c CloudStoragePayload) GetFilePath() string {
	return fmt.Sprintf("%s/%s", c.Path, c.Filename)
}

func NewCloudStoragePayload(input string) CloudStoragePayload {
	input = filepath.Clean(input)

	// Extract the directory and filename.
	path := filepath.Dir(input)
	filename := filepath.Base(input)

	// handle the special case where input might be just a filename.
	if strings.TrimSpace(path) == "." {
		path = "" // If there's no path, just set it to an empty string.
	}

	return CloudStoragePayload{Filename: filename, Path: path}
}

type WriteStreamResult struct {
	errCh <-chan error
	url   string
}

func NewWriteStreamResult(errCh <-chan error, url string) WriteStreamResult {
	return WriteStreamResult{errCh: errCh, url: url}
}

func (r WriteStreamResult) Wait() (string, error) {
	var errs *multierror.Error
	for e := range r.errCh {
		errs = multierror.Append(errs, e)
	}

	return r.url, errs.ErrorOrNil()
}

type FolderName string

// Bucket layout: uploaded bank files land under in/, run reports under out/,
// invoice exports under export/.
const (
	ReconciliationInFolderName  FolderName = "reconciliation/in"
	ReconciliationOutFolderName FolderName = "reconciliation/out"
	InvoiceExportFolderName     FolderName = "invoices/export"
)

const CSV_SEPARATOR = ";"
