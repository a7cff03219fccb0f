package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"meetingbot/config"
	"meetingbot/models"
)

// CredentialStore holds the single calendar-owner credential. Load
// fails with MissingCredentialError when nothing usable is stored; Save
// overwrites whatever is there (last writer wins, single-tenant).
type CredentialStore interface {
	Load() (*models.Credential, error)
	Save(cred *models.Credential) error
}

// NewCredentialStore picks the backend from CREDENTIALS_BACKEND.
func NewCredentialStore() (CredentialStore, error) {
	switch backend := config.GetCredentialsBackend(); backend {
	case "file":
		return NewFileCredentialStore(config.GetCredentialsFile()), nil
	case "dynamodb":
		return NewDynamoCredentialStore()
	default:
		return nil, fmt.Errorf("unknown credentials backend %q", backend)
	}
}

// FileCredentialStore keeps the credential as a JSON file at an
// operator-configured path.
type FileCredentialStore struct {
	path string
}

func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{path: path}
}

func (s *FileCredentialStore) Load() (*models.Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &MissingCredentialError{Source: s.path}
	}

	var cred models.Credential
	if err := json.Unmarshal(data, &cred); err != nil || cred.AccessToken == "" {
		return nil, &MissingCredentialError{Source: s.path}
	}
	return &cred, nil
}

// Save writes to a sibling temp file and renames it over the target, so
// a concurrent Load never sees a half-written credential.
func (s *FileCredentialStore) Save(cred *models.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("failed to serialize credential: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create credential directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace credential file: %w", err)
	}
	return nil
}
