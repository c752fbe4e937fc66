package models

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Session is the typed view of what the store persists
type Session struct {
	Token    string
	MemberID string
}

// LoggedIn reports whether a bearer token is present
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// SessionStore persists the bearer token, the member identifier and the
// profile snapshot as separate files in the config directory.
type SessionStore struct {
	TokenFile   string
	MemberFile  string
	ProfileFile string
}

func NewSessionStore(configDir string) *SessionStore {
	return &SessionStore{
		TokenFile:   filepath.Join(configDir, ".auth_token"),
		MemberFile:  filepath.Join(configDir, ".member_id"),
		ProfileFile: filepath.Join(configDir, "profile.json"),
	}
}

// SetSession stores both values. An empty memberID leaves any previous one removed.
func (s *SessionStore) SetSession(token, memberID string) error {
	if err := writeSecret(s.TokenFile, token); err != nil {
		return err
	}
	return s.SetMemberID(memberID)
}

// SetMemberID stores the member identifier used by sibling views
func (s *SessionStore) SetMemberID(memberID string) error {
	if memberID == "" {
		return removeIfExists(s.MemberFile)
	}
	return writeSecret(s.MemberFile, memberID)
}

// GetToken returns the stored token or "" when absent
func (s *SessionStore) GetToken() string {
	return readTrimmed(s.TokenFile)
}

// GetMemberID returns the stored member identifier or "" when absent
func (s *SessionStore) GetMemberID() string {
	return readTrimmed(s.MemberFile)
}

func (s *SessionStore) Session() Session {
	return Session{
		Token:    s.GetToken(),
		MemberID: s.GetMemberID(),
	}
}

// SaveProfile keeps a snapshot of the last loaded profile for the navigation shell
func (s *SessionStore) SaveProfile(profile *MemberProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.ProfileFile), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.ProfileFile, data, 0600)
}

// LoadProfile returns the stored snapshot, or nil if none was saved
func (s *SessionStore) LoadProfile() (*MemberProfile, error) {
	data, err := os.ReadFile(s.ProfileFile)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile MemberProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ClearSession removes the token, the member identifier and the profile snapshot
func (s *SessionStore) ClearSession() error {
	for _, path := range []string{s.TokenFile, s.MemberFile, s.ProfileFile} {
		if err := removeIfExists(path); err != nil {
			return err
		}
	}
	return nil
}

func writeSecret(path, value string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(value), 0600) // Restricted permissions
}

func readTrimmed(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func removeIfExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil // File doesn't exist, nothing to clear
	}
	return os.Remove(path)
}
