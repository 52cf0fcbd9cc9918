package validate

import (
	"encoding/base32"
	"errors"
)

// Stellar account IDs are strkey-encoded: base32 over a version byte,
// the 32-byte ed25519 public key and a CRC16-XModem checksum.
const (
	addressLen  = 56
	versionByte = 0x30 // 'G' prefix once encoded
)

var ErrInvalidAddress = errors.New("invalid stellar address")

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// DecodeAddress validates a Stellar account ID and returns the raw
// ed25519 public key bytes.
func DecodeAddress(address string) ([]byte, error) {
	if len(address) != addressLen || address[0] != 'G' {
		return nil, ErrInvalidAddress
	}
	raw, err := encoding.DecodeString(address)
	if err != nil {
		return nil, ErrInvalidAddress
	}
	if len(raw) != 35 || raw[0] != versionByte {
		return nil, ErrInvalidAddress
	}
	checksum := uint16(raw[33]) | uint16(raw[34])<<8
	if crc16(raw[:33]) != checksum {
		return nil, ErrInvalidAddress
	}
	return raw[1:33], nil
}

func IsStellarAddress(address string) bool {
	_, err := DecodeAddress(address)
	return err == nil
}

// crc16 implements CRC16-XModem (poly 0x1021, init 0).
func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
