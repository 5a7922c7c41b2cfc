package solver

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/benwh1/slidy-cli/alg"
	"github.com/benwh1/slidy-cli/puzzle"
)

// Serialized table layout: a fixed header, the raw distance bytes, and a
// trailing xxhash64 over everything before it. The checksum is the sole
// integrity gate: any mismatch means the bytes are treated as absent and
// the table is rebuilt.
const (
	tableMagic   = "SPDB"
	tableVersion = 1
	headerLen    = len(tableMagic) + 4 + 8 // magic, version+w+h+metric, payload length
	checksumLen  = 8
)

// Encode serializes the table with its embedded integrity checksum.
func (t *Table) Encode() []byte {
	buf := make([]byte, 0, headerLen+len(t.dist)+checksumLen)
	buf = append(buf, tableMagic...)
	buf = append(buf, tableVersion, byte(t.size.W), byte(t.size.H), byte(t.metric))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(t.dist)))
	buf = append(buf, t.dist...)
	buf = binary.LittleEndian.AppendUint64(buf, xxhash.Sum64(buf))
	return buf
}

// DecodeTable parses serialized table bytes, verifying the checksum and
// every structural field before the payload is accepted. All failures are
// reported as ErrCorruptTable; callers recover by rebuilding.
func DecodeTable(data []byte) (*Table, error) {
	if len(data) < headerLen+checksumLen {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrCorruptTable, len(data))
	}
	body, sum := data[:len(data)-checksumLen], data[len(data)-checksumLen:]
	if binary.LittleEndian.Uint64(sum) != xxhash.Sum64(body) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptTable)
	}
	if string(body[:len(tableMagic)]) != tableMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorruptTable)
	}
	version := body[4]
	if version != tableVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptTable, version)
	}
	w, h := int(body[5]), int(body[6])
	metric := alg.Metric(body[7])
	if metric != alg.STM && metric != alg.MTM {
		return nil, fmt.Errorf("%w: unknown metric %d", ErrCorruptTable, body[7])
	}
	size, err := puzzle.NewSize(w, h)
	if err != nil || size.Area() > MaxTableArea {
		return nil, fmt.Errorf("%w: bad size %dx%d", ErrCorruptTable, w, h)
	}
	payloadLen := binary.LittleEndian.Uint64(body[8:16])
	if payloadLen != uint64(factorials[size.Area()]) || int(payloadLen) != len(body)-headerLen {
		return nil, fmt.Errorf("%w: payload length %d does not match %s", ErrCorruptTable, payloadLen, size)
	}
	dist := make([]uint8, payloadLen)
	copy(dist, body[headerLen:])
	return &Table{size: size, metric: metric, dist: dist}, nil
}
