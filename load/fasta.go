package load

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/gogpu/gg-genome/gapped"
)

// ReadFASTA reads the reference sequence called name from a FASTA
// stream, or the first sequence when name is empty, and returns it as a
// base lookup for splice checking.
func ReadFASTA(r io.Reader, name string) (gapped.DNA, error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		if name != "" && s.Name() != name {
			continue
		}
		bases := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			bases[i] = byte(l)
		}
		return dna(string(bases)), nil
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("load: reading FASTA: %w", err)
	}
	return nil, fmt.Errorf("load: no FASTA sequence %q", name)
}

func dna(ref string) gapped.DNA {
	return func(x1, x2 int) string {
		if x1 < 1 || x2 > len(ref) || x1 > x2 {
			return ""
		}
		return ref[x1-1 : x2]
	}
}
