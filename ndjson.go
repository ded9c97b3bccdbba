package simdjson

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"runtime"
	"sync"
)

// ParseND parses b as newline-delimited JSON: a sequence of complete,
// self-contained JSON documents, each wrapped in its own root tag on a
// shared tape. This is a synchronous, complete parse of however many
// whole documents b holds, not incremental parsing of a single document.
func ParseND(b []byte, pj *ParsedDocument) error {
	pj.reset()
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		pj.status = EMPTY
		return newParseError(EMPTY, 0, 0, "")
	}

	padded := padInput(b)
	indices, status := findStructuralIndices(padded, len(b))
	if status != SUCCESS {
		pj.status = status
		return newParseError(status, 0, 0, "stage 1")
	}

	status = buildTapeND(padded, indices, pj)
	pj.status = status
	if status != SUCCESS {
		return newParseError(status, 0, 0, "stage 2")
	}

	pj.valid = true
	return nil
}

// Stream carries one ParseNDStream result; exactly one of Value or Error
// is set.
type Stream struct {
	Value *ParsedDocument
	Error error
}

const ndChunkSize = 10 << 20

// ParseNDStream reads newline-delimited JSON from r in the background and
// sends each chunk's parsed result, in order, to res. The stream ends
// when a non-nil Error is sent and res is closed; a clean end of input
// reports io.EOF. reuse is an optional channel of previously-returned
// documents the caller is done with, so ParseNDStream can avoid
// reallocating their backing arrays; sending on reuse is always optional
// and non-blocking from the caller's side.
func ParseNDStream(r io.Reader, res chan<- Stream, reuse <-chan *ParsedDocument) {
	buf := bufio.NewReaderSize(r, ndChunkSize)
	pool := sync.Pool{New: func() interface{} {
		return make([]byte, 0, ndChunkSize+1024)
	}}
	conc := (runtime.GOMAXPROCS(0) + 1) / 2
	if conc < 1 {
		conc = 1
	}
	queue := make(chan chan Stream, conc)

	go func() {
		// Forward finished chunks strictly in the order they were queued.
		defer close(res)
		for items := range queue {
			res <- <-items
		}
	}()

	go func() {
		defer close(queue)
		chunk := make([]byte, ndChunkSize)
		for {
			tmp := pool.Get().([]byte)[:0]
			n, err := buf.Read(chunk)
			tmp = append(tmp, chunk[:n]...)

			if err == nil {
				// Finish on a document boundary rather than splitting one
				// mid-stream.
				rest, err2 := buf.ReadBytes('\n')
				if err2 != nil && err2 != io.EOF {
					queueNDError(queue, err2)
					return
				}
				tmp = append(tmp, rest...)
			}

			if len(tmp) > 0 {
				result := make(chan Stream)
				queue <- result
				go parseNDChunk(tmp, result, reuse)
			} else {
				pool.Put(tmp[:0])
			}

			if err != nil {
				queueNDError(queue, err)
				return
			}
		}
	}()
}

func parseNDChunk(tmp []byte, result chan<- Stream, reuse <-chan *ParsedDocument) {
	var pj *ParsedDocument
	select {
	case v := <-reuse:
		pj = v
	default:
		pj = NewParsedDocument(len(tmp))
	}
	if err := ParseND(tmp, pj); err != nil {
		result <- Stream{Error: fmt.Errorf("parsing input: %w", err)}
		return
	}
	result <- Stream{Value: pj}
}

func queueNDError(queue chan chan Stream, err error) {
	result := make(chan Stream)
	queue <- result
	result <- Stream{Error: err}
}
