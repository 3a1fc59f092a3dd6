//go:build linux

/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */

// Package rpi connects the card to a Raspberry Pi running Linux: the matrix
// backpack on an i2c-dev bus and the buttons on a GPIO character device.
package rpi

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// I2C_SLAVE from linux/i2c-dev.h
const i2cSlave = 0x0703

// Bus is an i2c-dev adapter. It satisfies drivers.I2C, so the ht16k33
// driver runs on it unchanged.
type Bus struct {
	mu   sync.Mutex
	fd   int
	addr uint16
	path string
}

// OpenBus opens /dev/i2c-<n>.
func OpenBus(n int) (*Bus, error) {
	path := fmt.Sprintf("/dev/i2c-%d", n)
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Bus{fd: fd, path: path}, nil
}

// Tx writes w then reads into r, addressing the device at addr.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.addr != addr {
		if err := unix.IoctlSetInt(b.fd, i2cSlave, int(addr)); err != nil {
			return fmt.Errorf("%s: select 0x%02x: %w", b.path, addr, err)
		}
		b.addr = addr
	}

	if len(w) > 0 {
		n, err := unix.Write(b.fd, w)
		if err != nil {
			return fmt.Errorf("%s: write: %w", b.path, err)
		}
		if n != len(w) {
			return fmt.Errorf("%s: short write %d of %d", b.path, n, len(w))
		}
	}

	if len(r) > 0 {
		n, err := unix.Read(b.fd, r)
		if err != nil {
			return fmt.Errorf("%s: read: %w", b.path, err)
		}
		if n != len(r) {
			return fmt.Errorf("%s: short read %d of %d", b.path, n, len(r))
		}
	}
	return nil
}

func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return unix.Close(b.fd)
}
