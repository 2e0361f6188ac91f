package dat

// Alphabet maps BMP code units (0..65535) to the dense IDs [1..Sigma] that
// label trie transitions. 0 means "not part of the vocabulary alphabet".
//
// Storage is a two-level page table: Top[hi] selects a 256-entry page, so
// only the high-byte blocks actually touched by vocabulary words allocate
// memory (512 bytes per page, 512 bytes for Top). A vocabulary drawing from
// a handful of scripts touches only a few pages. Lookup is O(1) with two
// array reads.
type Alphabet struct {
	Top   [256]uint16 // page index (1-based); 0 means page absent
	Pages []uint16    // flat: pageCount*256 entries
}

// Dense returns the dense alphabet ID for a BMP code unit.
// Returns 0 if the code unit is not in the alphabet.
func (a *Alphabet) Dense(bmp uint16) uint16 {
	hi := bmp >> 8
	pi := a.Top[hi]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return a.Pages[base+int(bmp&0xFF)]
}

// Set assigns bmp -> dense (dense may be 0 to clear), allocating the page
// for bmp's high byte on first use.
func (a *Alphabet) Set(bmp uint16, dense uint16) {
	hi := bmp >> 8
	pi := a.Top[hi]
	if pi == 0 {
		if dense == 0 {
			return
		}
		pi = a.ensurePage(hi)
	}
	base := int(pi-1) << 8
	a.Pages[base+int(bmp&0xFF)] = dense
}

func (a *Alphabet) ensurePage(hi uint16) uint16 {
	pi := a.Top[hi]
	if pi != 0 {
		return pi
	}
	a.Pages = append(a.Pages, make([]uint16, 256)...) // zeroed page
	pi = uint16(len(a.Pages) >> 8)                    // page count == new 1-based index
	a.Top[hi] = pi
	return pi
}
