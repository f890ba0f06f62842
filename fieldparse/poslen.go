package fieldparse

// PosLen describes a substring of the source without materializing it.
// It packs a byte offset, a byte count, and two flag bits into one 64-bit
// word:
//
//	bit 63      missing (field was a sentinel or empty-as-missing)
//	bit 62      escaped (field contained at least one escape sequence)
//	bits 20-61  pos, the start offset into the source
//	bits 0-19   len, the field length in bytes
//
// For escaped fields Len counts decoded bytes, one per escape pair, so
// GetString knows exactly how many bytes to produce. A PosLen stays valid
// for as long as the caller keeps the source it was produced from.
type PosLen uint64

const (
	missingBit PosLen = 1 << 63
	escapedBit PosLen = 1 << 62

	posShift = 20
	lenBits  = 20

	// MaxPos is the largest representable start offset.
	MaxPos = 1<<42 - 1
	// MaxLen is the largest representable field length.
	MaxLen = 1<<lenBits - 1
)

// NewPosLen returns a descriptor for the n bytes starting at pos, with no
// flags set.
func NewPosLen(pos, n int) PosLen {
	return PosLen(pos)<<posShift | PosLen(n)
}

// Pos returns the start offset into the source.
func (pl PosLen) Pos() int { return int(pl >> posShift & MaxPos) }

// Len returns the field length in bytes (decoded bytes when escaped).
func (pl PosLen) Len() int { return int(pl & MaxLen) }

// Missing reports whether the field is a missing value.
func (pl PosLen) Missing() bool { return pl&missingBit != 0 }

// Escaped reports whether the field contained an escape sequence.
func (pl PosLen) Escaped() bool { return pl&escapedBit != 0 }

// AsMissing returns pl with the missing bit set.
func (pl PosLen) AsMissing() PosLen { return pl | missingBit }

// AsEscaped returns pl with the escaped bit set.
func (pl PosLen) AsEscaped() PosLen { return pl | escapedBit }

// addLen returns pl with its length grown by k bytes.
func (pl PosLen) addLen(k int) PosLen { return pl + PosLen(k) }
