package vector

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/recruitr-hq/recruitr/internal/domain"
)

// buildHashFields flattens a participant's filterable attributes plus the
// embedding into an HSET field map.
func buildHashFields(p *domain.Participant, embedding []float32) map[string]string {
	return map[string]string{
		"remote":           strconv.FormatBool(p.Remote()),
		"tools":            strings.Join(p.Tools(), ","),
		"role":             p.Role(),
		"team_size":        strconv.Itoa(p.TeamSize()),
		"company_size":     p.CompanySize(),
		"experience_years": strconv.Itoa(p.ExperienceYears()),
		"vector":           vectorToBytes(embedding),
	}
}

// vectorToBytes serializes []float32 to a binary string, 4 bytes per float,
// little-endian.
func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}
