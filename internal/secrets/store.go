package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// lightweight per-user secret store (file, 0600) with AES-GCM obfuscation.
// Not a replacement for OS keychains but avoids plain-text config.

const fileName = "secrets.json"

var ErrNotFound = errors.New("secret not found")

type secretFile struct {
	Secrets map[string]string `json:"secrets"` // name -> base64(ciphertext)
}

// Store keeps named secrets in one file.
type Store struct {
	path string
}

// Open returns the store in dir, or in the user config dir when dir is empty.
func Open(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "gatenav")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil { // restrict directory
		return nil, err
	}
	return &Store{path: filepath.Join(dir, fileName)}, nil
}

func (s *Store) Put(name, value string) error {
	if name = norm(name); name == "" {
		return fmt.Errorf("secret name required")
	}
	sf, err := load(s.path)
	if err != nil {
		return err
	}
	if sf.Secrets == nil {
		sf.Secrets = map[string]string{}
	}
	ct, err := encrypt([]byte(value))
	if err != nil {
		return err
	}
	sf.Secrets[name] = base64.StdEncoding.EncodeToString(ct)
	return save(s.path, sf)
}

func (s *Store) Get(name string) (string, error) {
	if name = norm(name); name == "" {
		return "", fmt.Errorf("secret name required")
	}
	sf, err := load(s.path)
	if err != nil {
		return "", err
	}
	enc, ok := sf.Secrets[name]
	if !ok {
		return "", ErrNotFound
	}
	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return "", err
	}
	pt, err := decrypt(raw)
	if err != nil {
		return "", err
	}
	return string(pt), nil
}

func (s *Store) Delete(name string) error {
	if name = norm(name); name == "" {
		return fmt.Errorf("secret name required")
	}
	sf, err := load(s.path)
	if err != nil {
		return err
	}
	delete(sf.Secrets, name)
	return save(s.path, sf)
}

// GetOrCreate returns the named secret, generating size random bytes
// (base64 encoded) on first use.
func (s *Store) GetOrCreate(name string, size int) (string, error) {
	v, err := s.Get(name)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", err
	}
	v = base64.RawStdEncoding.EncodeToString(buf)
	if err := s.Put(name, v); err != nil {
		return "", err
	}
	return v, nil
}

func load(path string) (secretFile, error) {
	var sf secretFile
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return secretFile{}, nil
		}
		return sf, err
	}
	if err := json.Unmarshal(data, &sf); err != nil {
		return sf, err
	}
	return sf, nil
}

func save(path string, sf secretFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func norm(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

func masterKey() []byte {
	base := fmt.Sprintf("gatenav-%s-%s", runtime.GOOS, os.Getenv("USER"))
	hash := sha256.Sum256([]byte(base))
	return hash[:]
}

func newGCM() (cipher.AEAD, error) {
	block, err := aes.NewCipher(masterKey())
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func encrypt(plain []byte) ([]byte, error) {
	gcm, err := newGCM()
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM()
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce := ciphertext[:gcm.NonceSize()]
	body := ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, body, nil)
}
