// Package assemblyai adapts the AssemblyAI SDK for answer transcription.
package assemblyai

import (
	"context"
	"fmt"
	"io"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Result is a completed transcription.
type Result struct {
	Text            string
	DurationSeconds float64
	Confidence      float64
}

// Client wraps the AssemblyAI SDK. The SDK helpers upload the audio and poll
// until the transcript job completes.
type Client struct {
	client *aai.Client
	logger *zap.Logger
}

// NewClient creates an AssemblyAI client. An empty key is allowed; calls will
// fail at request time and callers fall back to client-side transcripts.
func NewClient(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		client: aai.NewClient(apiKey),
		logger: logger,
	}
}

// TranscribeReader uploads audio from r and waits for the transcript.
func (c *Client) TranscribeReader(ctx context.Context, r io.Reader) (*Result, error) {
	transcript, err := c.client.Transcripts.TranscribeFromReader(ctx, r, nil)
	if err != nil {
		return nil, fmt.Errorf("assemblyai transcription failed: %w", err)
	}
	return c.toResult(transcript)
}

// TranscribeURL transcribes audio reachable at the given URL, typically a
// presigned object storage link. URL submissions are idempotent, so transient
// API failures are retried with exponential backoff.
func (c *Client) TranscribeURL(ctx context.Context, audioURL string) (*Result, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 2 * time.Minute

	var transcript aai.Transcript
	operation := func() error {
		t, err := c.client.Transcripts.TranscribeFromURL(ctx, audioURL, nil)
		if err != nil {
			c.logger.Warn("transcription attempt failed, retrying", zap.Error(err))
			return err
		}
		transcript = t
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("assemblyai transcription failed: %w", err)
	}
	return c.toResult(transcript)
}

func (c *Client) toResult(transcript aai.Transcript) (*Result, error) {
	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("assemblyai transcript error: %s", msg)
	}

	result := &Result{}
	if transcript.Text != nil {
		result.Text = *transcript.Text
	}
	if transcript.AudioDuration != nil {
		result.DurationSeconds = *transcript.AudioDuration
	}
	if transcript.Confidence != nil {
		result.Confidence = *transcript.Confidence
	}

	c.logger.Debug("transcription completed",
		zap.Float64("duration_seconds", result.DurationSeconds),
		zap.Int("text_length", len(result.Text)))

	return result, nil
}
