package cxpm

import (
	"bytes"

	"github.com/32bitkid/bitreader"
)

// token is either a plain packed byte (run of one) or an escaped run.
type token struct {
	run    int
	hi, lo uint8
}

type scanner struct {
	bits bitreader.BitReader
}

func newScanner(line []byte) scanner {
	return scanner{bitreader.NewReader(bytes.NewReader(line))}
}

// next reads one token; any error means the scanline is exhausted.
func (s scanner) next() (token, error) {
	run := 1
	if peek, err := s.bits.Peek8(8); err != nil {
		return token{}, err
	} else if peek == escape {
		if err := s.bits.Skip(8); err != nil {
			return token{}, err
		}
		n, err := s.bits.Read8(8)
		if err != nil {
			return token{}, err
		}
		run = int(n)
	}

	hi, err := s.bits.Read8(4)
	if err != nil {
		return token{}, err
	}
	lo, err := s.bits.Read8(4)
	if err != nil {
		return token{}, err
	}

	return token{run, hi, lo}, nil
}
