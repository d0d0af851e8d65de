package hangulcv

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical encoding so equal results encode identically.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("hangulcv: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalResults serializes results to CBOR bytes.
func MarshalResults(results []Result) ([]byte, error) {
	return cborEncMode.Marshal(results)
}

// UnmarshalResults deserializes results from CBOR bytes.
func UnmarshalResults(data []byte) ([]Result, error) {
	var results []Result
	if err := cbor.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("hangulcv: unmarshal results: %w", err)
	}
	return results, nil
}

// EncodeResults writes results to w as one CBOR array.
func EncodeResults(w io.Writer, results []Result) error {
	data, err := MarshalResults(results)
	if err != nil {
		return fmt.Errorf("hangulcv: marshal results: %w", err)
	}
	_, err = w.Write(data)
	return err
}
