package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/algo-odyssey/backend/config"
	"github.com/rs/zerolog/log"
)

var (
	// ErrComparatorNotReady is returned while the face comparator is not
	// configured; operations that need it fail fast instead of polling.
	ErrComparatorNotReady = errors.New("face comparator not configured")
	// ErrNoFace means the comparator found no face in the supplied image.
	ErrNoFace = errors.New("no face detected")
)

// FaceComparator is the external collaborator that turns an image into a
// fixed-length descriptor. Its detection model is a black box to us.
type FaceComparator interface {
	Descriptor(ctx context.Context, image []byte) ([]float64, error)
}

type httpFaceComparator struct {
	url    string
	client *http.Client
}

func NewFaceComparator(cfg *config.Config) FaceComparator {
	if cfg.Proctor.ComparatorURL == "" {
		log.Warn().Msg("FACE_COMPARATOR_URL is not set. Face verification will be non-functional.")
	}
	return &httpFaceComparator{
		url:    cfg.Proctor.ComparatorURL,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type comparatorRequest struct {
	Image string `json:"image"` // base64-encoded JPEG/PNG
}

type comparatorResponse struct {
	Status     string    `json:"status"` // "ok" or "noface"
	Descriptor []float64 `json:"descriptor,omitempty"`
	Message    string    `json:"message,omitempty"`
}

func (c *httpFaceComparator) Descriptor(ctx context.Context, image []byte) ([]float64, error) {
	if c.url == "" {
		return nil, ErrComparatorNotReady
	}

	payload, err := json.Marshal(comparatorRequest{Image: base64.StdEncoding.EncodeToString(image)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode comparator request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build comparator request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("comparator request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("comparator returned status %d", resp.StatusCode)
	}

	var body comparatorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode comparator response: %w", err)
	}
	if body.Status == "noface" {
		return nil, ErrNoFace
	}
	if len(body.Descriptor) == 0 {
		return nil, fmt.Errorf("comparator returned empty descriptor: %s", body.Message)
	}
	return body.Descriptor, nil
}
