// Package testutil provides configurable fakes for the pipeline's
// external adapters so workflow tests run without ffmpeg or network
// access.
package testutil

import (
	"context"
	"sync"

	"voice-blog/internal/app/api"
	"voice-blog/internal/app/audio"
	"voice-blog/internal/app/util/files"
)

// MockPreprocessor fakes the ffmpeg step by writing configurable bytes
// to the output path.
type MockPreprocessor struct {
	mu sync.Mutex

	// Output is written to the output path on success.
	Output []byte
	// ErrorMap returns an error for specific input paths.
	ErrorMap map[string]error
	// DefaultError is returned for every call when set.
	DefaultError error

	CallCount int
	Calls     []string
}

func NewMockPreprocessor() *MockPreprocessor {
	return &MockPreprocessor{
		Output:   []byte("processed audio bytes"),
		ErrorMap: make(map[string]error),
	}
}

func (m *MockPreprocessor) Process(ctx context.Context, inputPath, outputPath string) error {
	m.mu.Lock()
	m.CallCount++
	m.Calls = append(m.Calls, inputPath)
	err, specific := m.ErrorMap[inputPath]
	defaultErr := m.DefaultError
	output := m.Output
	m.mu.Unlock()

	if specific {
		return err
	}
	if defaultErr != nil {
		return defaultErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return files.WriteAtomic(outputPath, output)
}

// SetErrorForFile makes calls for the given input path fail.
func (m *MockPreprocessor) SetErrorForFile(inputPath string, err error) *MockPreprocessor {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ErrorMap[inputPath] = err
	return m
}

func (m *MockPreprocessor) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

// MockTranscriber fakes the transcription API.
type MockTranscriber struct {
	mu sync.Mutex

	DefaultResponse string
	// ResponseMap returns a specific transcript for specific audio paths.
	ResponseMap  map[string]string
	ErrorMap     map[string]error
	DefaultError error

	CallCount int
	Calls     []string
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "This is a mock transcript.",
		ResponseMap:     make(map[string]string),
		ErrorMap:        make(map[string]error),
	}
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	m.mu.Lock()
	m.CallCount++
	m.Calls = append(m.Calls, audioPath)
	err, hasErr := m.ErrorMap[audioPath]
	response, hasResponse := m.ResponseMap[audioPath]
	defaultErr := m.DefaultError
	defaultResponse := m.DefaultResponse
	m.mu.Unlock()

	if hasErr {
		return "", err
	}
	if defaultErr != nil {
		return "", defaultErr
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if hasResponse {
		return response, nil
	}
	return defaultResponse, nil
}

func (m *MockTranscriber) SetErrorForFile(audioPath string, err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ErrorMap[audioPath] = err
	return m
}

func (m *MockTranscriber) SetResponseForFile(audioPath, response string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResponseMap[audioPath] = response
	return m
}

func (m *MockTranscriber) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

// MockGenerator fakes the blog generation API.
type MockGenerator struct {
	mu sync.Mutex

	DefaultResponse string
	DefaultError    error

	CallCount   int
	Transcripts []string
}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{
		DefaultResponse: "# Mock Blog Post\n\nGenerated from the transcript.",
	}
}

func (m *MockGenerator) Generate(ctx context.Context, transcript string) (string, error) {
	m.mu.Lock()
	m.CallCount++
	m.Transcripts = append(m.Transcripts, transcript)
	defaultErr := m.DefaultError
	response := m.DefaultResponse
	m.mu.Unlock()

	if defaultErr != nil {
		return "", defaultErr
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return response, nil
}

func (m *MockGenerator) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

// Interface compliance checks
var _ audio.Preprocessor = (*MockPreprocessor)(nil)
var _ api.Transcriber = (*MockTranscriber)(nil)
var _ api.Generator = (*MockGenerator)(nil)
