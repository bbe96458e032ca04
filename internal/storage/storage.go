package storage

import (
	"errors"
	"io"

	"github.com/ClaraVasseur/InstaLite-Back/internal/config"
)

// ErrIngestFailed enveloppe toute défaillance du stockage média
// (disque plein, S3 injoignable...). Le détail part dans les logs,
// pas vers le client.
var ErrIngestFailed = errors.New("échec du stockage du média")

// Ingest stocke un média et renvoie une référence stable et unique.
// Les octets ne sont jamais interprétés.
type Ingest interface {
	Store(file io.Reader, filename, contentType string) (string, error)
	Delete(mediaRef string) error
}

var ingest Ingest

// Init choisit le backend : S3 si un bucket est configuré, sinon le disque local.
func Init(cfg *config.Config) error {
	if cfg.AWSBucket != "" {
		s3Ingest, err := NewS3Storage(cfg.AWSBucket, cfg.AWSRegion)
		if err != nil {
			return err
		}
		ingest = s3Ingest
		return nil
	}

	localIngest, err := NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return err
	}
	ingest = localIngest
	return nil
}

func Store(file io.Reader, filename, contentType string) (string, error) {
	return ingest.Store(file, filename, contentType)
}

func Delete(mediaRef string) error {
	return ingest.Delete(mediaRef)
}
