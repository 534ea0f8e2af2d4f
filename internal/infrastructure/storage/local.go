package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicPrefix ruta pública bajo la que el router sirve los archivos subidos.
const PublicPrefix = "/uploaded"

// LocalStore blob store sobre el filesystem local. Guarda cada archivo con un
// nombre basado en uuid (el nombre original solo aporta la extensión) y
// devuelve la ruta pública con la que el cliente lo recupera.
type LocalStore struct {
	dir string
}

// NewLocalStore crea el directorio de subida si no existe.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de subida: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir directorio físico donde quedan los archivos.
func (s *LocalStore) Dir() string { return s.dir }

// Save escribe el contenido y devuelve la ruta pública (/uploaded/<nombre>).
func (s *LocalStore) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	fileName := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.dir, fileName))
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("cerrar archivo: %w", err)
	}
	return path.Join(PublicPrefix, fileName), nil
}
