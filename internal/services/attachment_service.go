package services

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"

	"fabshop-backend/internal/models"
	"fabshop-backend/internal/supabase"
)

// AttachmentService owns the lifecycle of quote attachments: the blob goes to
// Supabase Storage, the row to Postgres, and an event to Realtime. If the row
// insert fails the blob is removed again so storage never leaks orphans.
type AttachmentService struct {
	dbClient       *supabase.DatabaseClient
	storageClient  *supabase.StorageClient
	realtimeClient *supabase.RealtimeClient
}

func NewAttachmentService(
	dbClient *supabase.DatabaseClient,
	storageClient *supabase.StorageClient,
	realtimeClient *supabase.RealtimeClient,
) *AttachmentService {
	return &AttachmentService{
		dbClient:       dbClient,
		storageClient:  storageClient,
		realtimeClient: realtimeClient,
	}
}

func (s *AttachmentService) Upload(quoteID int64, uploadedBy uuid.UUID, filename, contentType string, data []byte) (*models.QuoteFile, error) {
	fileID := uuid.New()

	storagePath, storageURL, err := s.storageClient.UploadQuoteFile(quoteID, fileID, filename, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	file := &models.QuoteFile{
		ID:          fileID,
		QuoteID:     quoteID,
		Filename:    filename,
		StoragePath: storagePath,
		StorageURL:  storageURL,
		FileSize:    sql.NullInt64{Int64: int64(len(data)), Valid: true},
		MimeType:    contentType,
		UploadedBy:  uploadedBy,
	}
	if err := s.dbClient.CreateQuoteFile(file); err != nil {
		if cleanupErr := s.storageClient.DeleteFile(storagePath); cleanupErr != nil {
			log.Printf("Warning: failed to clean up orphaned blob %s: %v", storagePath, cleanupErr)
		}
		return nil, err
	}

	if s.realtimeClient != nil {
		if err := s.realtimeClient.PublishQuoteEvent(quoteID, "attachment_uploaded",
			supabase.AttachmentUploadedPayload(quoteID, fileID.String(), filename)); err != nil {
			log.Printf("Warning: failed to publish attachment event for quote %d: %v", quoteID, err)
		}
	}

	return file, nil
}

func (s *AttachmentService) Delete(fileID uuid.UUID) error {
	file, err := s.dbClient.GetQuoteFile(fileID)
	if err != nil {
		return err
	}

	if err := s.storageClient.DeleteFile(file.StoragePath); err != nil {
		return fmt.Errorf("failed to delete attachment blob: %w", err)
	}
	return s.dbClient.DeleteQuoteFile(fileID)
}
