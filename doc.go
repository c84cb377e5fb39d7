/*
Package stdfcore provides a pure-Go decoder for STDF v4 (Standard Test
Data Format) files: the binary record stream semiconductor ATE testers
write to log per-device test results.

It decodes any of the 25 STDF v4 record types from a plain, gzip, bzip2,
zip, or zstd-compressed file, deriving the stream's byte order once from
the leading FAR record and handing decoded records to a caller-supplied
handler across a bounded producer/consumer queue.

# Usage

	p, err := stdfcore.Open("lot42.stdf.gz", stdfcore.DefaultOptions())
	if err != nil {
		// ...
	}
	defer p.Close()

	err = p.Run(context.Background(), func(rec record.Decoded) error {
		// handle rec.Header.Tag() / rec.Body
		return nil
	})

# Concurrency

A Pipeline drives exactly two goroutines: the reader/decoder (producer)
and the caller's handler (consumer), connected by a bounded SPSC queue.
Run blocks until the stream is exhausted, the handler returns an error,
or the context is cancelled.
*/
package stdfcore
