package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/raywall/integra-contador-sdk/pkg/types"
)

// FileStore guarda config e token em um único arquivo JSON. A escrita é
// atômica (arquivo temporário + rename) para que um crash no meio do
// save nunca deixe um documento truncado para trás.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore cria um store apontando para path. O diretório é criado
// no primeiro save, não aqui.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) LoadConfig(ctx context.Context) (*types.AuthConfig, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Config, nil
}

func (s *FileStore) SaveConfig(ctx context.Context, cfg *types.AuthConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readLocked()
	if err != nil {
		return err
	}
	doc.Config = cfg
	return s.writeLocked(doc)
}

func (s *FileStore) LoadToken(ctx context.Context) (*types.TokenRecord, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Token, nil
}

func (s *FileStore) SaveToken(ctx context.Context, tok *types.TokenRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readLocked()
	if err != nil {
		return err
	}
	doc.Token = tok
	return s.writeLocked(doc)
}

func (s *FileStore) read() (document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

func (s *FileStore) readLocked() (document, error) {
	var doc document

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("erro ao ler %s: %w", s.path, err)
	}

	// Documento corrompido é tratado como ausente: o próximo save
	// sobrescreve o arquivo com um documento válido.
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, nil
	}
	return doc, nil
}

func (s *FileStore) writeLocked(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar credenciais: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("erro ao criar diretório %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("erro ao gravar %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("erro ao fechar %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("erro ao ajustar permissões de %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("erro ao substituir %s: %w", s.path, err)
	}
	return nil
}
