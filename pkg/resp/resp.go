package resp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Envelope รูปแบบ response มาตรฐานของ backend: {ok, data, error}
type Envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

// Decode แกะ envelope แล้ว unmarshal data ลง out (out เป็น nil ได้ถ้าไม่สนใจ data)
func Decode(r io.Reader, out any) error {
	var env Envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.OK {
		if env.Error == "" {
			return errors.New("request failed")
		}
		return errors.New(env.Error)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
