// Copyright 2026 benjerming
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"strings"
	"sync"
)

const defaultWebviewBacklog = 256

// WebviewSink is a zapcore.WriteSyncer that forwards encoded log records
// to the frontend. Records written before a window exists are kept in a
// bounded backlog and flushed on Attach.
type WebviewSink struct {
	mu      sync.Mutex
	emit    func(string)
	backlog []string
	limit   int
}

func NewWebviewSink(limit int) *WebviewSink {
	return &WebviewSink{limit: limit}
}

// Attach sets the function used to deliver records and flushes the
// backlog through it.
func (s *WebviewSink) Attach(emit func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emit = emit
	if emit == nil {
		return
	}
	for _, line := range s.backlog {
		emit(line)
	}
	s.backlog = nil
}

// Detach stops delivery. Later records are buffered again.
func (s *WebviewSink) Detach() {
	s.Attach(nil)
}

func (s *WebviewSink) Write(p []byte) (int, error) {
	// zap reuses the buffer after Write returns
	line := strings.TrimRight(string(p), "\n")
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emit != nil {
		s.emit(line)
		return len(p), nil
	}
	if s.limit <= 0 {
		return len(p), nil
	}
	if len(s.backlog) >= s.limit {
		s.backlog = s.backlog[1:]
	}
	s.backlog = append(s.backlog, line)
	return len(p), nil
}

func (s *WebviewSink) Sync() error {
	return nil
}

// Backlog returns a copy of the buffered records.
func (s *WebviewSink) Backlog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.backlog...)
}
