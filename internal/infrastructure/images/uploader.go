// Package images sube imágenes a un host HTTP externo; la API solo guarda
// las URLs que el host devuelve.
package images

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Uploader implementa order.ImageUploader contra un endpoint multipart.
type Uploader struct {
	uploadURL string
	apiKey    string
	client    *http.Client
}

// NewUploader construye el cliente de subida.
func NewUploader(uploadURL, apiKey string) *Uploader {
	return &Uploader{
		uploadURL: uploadURL,
		apiKey:    apiKey,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload envía el archivo como multipart/form-data y devuelve la URL pública.
// El host responde {"url": "..."}.
func (u *Uploader) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("images: crear form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("images: copiar contenido: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("images: cerrar form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("images: crear request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if u.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+u.apiKey)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("images: subir: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("images: el host respondió %d", resp.StatusCode)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("images: decodificar respuesta: %w", err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("images: respuesta sin url")
	}
	return out.URL, nil
}
