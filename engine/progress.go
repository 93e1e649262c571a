package engine

import (
	"io"

	pb "github.com/cheggaaa/pb/v3"
)

// newProgressReader wraps r so every read advances a byte progress bar drawn on out.
func newProgressReader(r io.Reader, size int64, out io.Writer) (io.Reader, func()) {
	bar := pb.New64(size)
	bar.Set(pb.Bytes, true)
	bar.SetWriter(out)
	bar.Start()
	return bar.NewProxyReader(r), func() {
		bar.Finish()
	}
}
