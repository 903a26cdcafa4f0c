package repositories

import (
	"bufio"
	"context"
	"mime/multipart"
)

type FileRepository interface {
	StreamReadMultipartFile(ctx context.Context, file *multipart.FileHeader) <-chan StreamReadMultipartFileResult
}

type fileRepo struct{}

// StreamReadMultipartFile implements FileRepository.
func (*fileRepo) StreamReadMultipartFile(ctx context.Context, file *multipart.FileHeader) <-chan StreamReadMultipartFileResult {
	resultCh := make(chan StreamReadMultipartFileResult)

	go func() {
		defer close(resultCh)

		// Open file
		openedFile, err := file.Open()
		if err != nil {
			resultCh <- StreamReadMultipartFileResult{Err: err}
			return
		}

		// Scanner
		scanner := bufio.NewScanner(openedFile)
		bufferSize := 1024 * 512
		buffer := make([]byte, bufferSize)
		scanner.Buffer(buffer, bufferSize)

		// Read
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			default:
				resultCh <- StreamReadMultipartFileResult{Data: scanner.Text()}
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case <-ctx.Done():
				return
			default:
				resultCh <- StreamReadMultipartFileResult{Err: err}
			}
		}

		// Close
		openedFile.Close()
	}()

	return resultCh
}

func NewFileRepository() FileRepository {
	return &fileRepo{}
}

type StreamReadMultipartFileResult struct {
	Data string
	Err  error
}
