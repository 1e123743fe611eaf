package printer

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Descriptor identifies one candidate printer device.
type Descriptor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	VendorID  string `json:"vendorId"`
	ProductID string `json:"productId"`
}

// ListDevices enumerates currently attached USB line-printer devices.
// An empty result is not an error; it simply means no printer is
// plugged in right now.
func ListDevices() []Descriptor {
	paths, _ := filepath.Glob("/dev/usb/lp*")
	sort.Strings(paths)

	devices := make([]Descriptor, 0, len(paths))
	for _, p := range paths {
		d := Descriptor{ID: p, Name: filepath.Base(p)}
		d.VendorID, d.ProductID = usbIDs(filepath.Base(p))
		devices = append(devices, d)
	}
	return devices
}

// ListDevicesWith returns a device lister that appends statically
// configured devices (network printers, fixed device paths) to the
// autodetected USB list.
func ListDevicesWith(extra []string) func() []Descriptor {
	return func() []Descriptor {
		devices := ListDevices()
		for _, e := range extra {
			if e == "" {
				continue
			}
			devices = append(devices, Descriptor{ID: e, Name: e})
		}
		return devices
	}
}

// usbIDs reads the vendor/product identifiers for a lp device from
// sysfs. Best effort; missing attributes leave the fields empty.
func usbIDs(name string) (vendor, product string) {
	base := filepath.Join("/sys/class/usbmisc", name, "device", "..")
	vendor = readSysfs(filepath.Join(base, "idVendor"))
	product = readSysfs(filepath.Join(base, "idProduct"))
	return vendor, product
}

func readSysfs(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// OpenFunc opens a writable handle to a printer device. The context
// bounds the time spent waiting for the device to become available.
type OpenFunc func(ctx context.Context, device string) (io.WriteCloser, error)

// Open is the default OpenFunc. Device strings starting with "/" are
// treated as device files (e.g. /dev/usb/lp0); strings containing a
// colon are dialed as raw TCP printers (e.g. 192.168.1.50:9100).
func Open(ctx context.Context, device string) (io.WriteCloser, error) {
	if device == "" {
		return nil, fmt.Errorf("printer: no device selected")
	}
	if !strings.HasPrefix(device, "/") && strings.Contains(device, ":") {
		return openNetwork(ctx, device)
	}
	return openFile(ctx, device)
}

// openFile opens the device file off the calling goroutine so a stuck
// or busy device honors the context deadline instead of blocking the
// dispatch forever.
func openFile(ctx context.Context, path string) (io.WriteCloser, error) {
	type result struct {
		f   *os.File
		err error
	}
	ch := make(chan result, 1)
	go func() {
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		ch <- result{f, err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("printer: failed to open device %s: %w", path, r.err)
		}
		return r.f, nil
	case <-ctx.Done():
		// The open may still complete later; close the handle when it does.
		go func() {
			if r := <-ch; r.f != nil {
				r.f.Close()
			}
		}()
		return nil, fmt.Errorf("printer: timed out opening device %s: %w", path, ctx.Err())
	}
}

func openNetwork(ctx context.Context, address string) (io.WriteCloser, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("printer: failed to connect to %s: %w", address, err)
	}
	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn, nil
}
