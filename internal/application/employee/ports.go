package employee

import (
	"context"
	"io"
)

// FileUpload archivo adjunto en la petición (parte profileImage).
type FileUpload struct {
	Name    string
	Content io.ReadCloser
}

// FileStore puerto del blob store que persiste imágenes de perfil y devuelve
// la ruta pública con la que se recuperan.
type FileStore interface {
	Save(ctx context.Context, name string, content io.Reader) (string, error)
}
