package cache

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Key hashes an operation name and its inputs into a cache key. Floats are
// hashed by their bit pattern, so 0 and -0 or two NaN payloads stay
// distinct and equal inputs always map to the same key.
func Key(op string, parts ...interface{}) string {
	d := xxhash.New()
	writeString(d, op)
	var buf [8]byte
	for _, p := range parts {
		switch v := p.(type) {
		case float64:
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		case []float64:
			writeLen(d, len(v))
			for _, f := range v {
				binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
				_, _ = d.Write(buf[:])
			}
		case int:
			binary.LittleEndian.PutUint64(buf[:], uint64(v))
			_, _ = d.Write(buf[:])
		case []int:
			writeLen(d, len(v))
			for _, n := range v {
				binary.LittleEndian.PutUint64(buf[:], uint64(n))
				_, _ = d.Write(buf[:])
			}
		case uint64:
			binary.LittleEndian.PutUint64(buf[:], v)
			_, _ = d.Write(buf[:])
		case bool:
			if v {
				_, _ = d.Write([]byte{1})
			} else {
				_, _ = d.Write([]byte{0})
			}
		case string:
			writeString(d, v)
		case fmt.Stringer:
			writeString(d, v.String())
		default:
			writeString(d, fmt.Sprintf("%T:%v", v, v))
		}
	}
	return op + ":" + strconv.FormatUint(d.Sum64(), 16)
}

func writeLen(d *xxhash.Digest, n int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	_, _ = d.Write(buf[:])
}

func writeString(d *xxhash.Digest, s string) {
	writeLen(d, len(s))
	_, _ = d.WriteString(s)
}
