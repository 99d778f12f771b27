//go:build windows

package inject

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	sendInput      = user32.NewProc("SendInput")
	mapVirtualKeyW = user32.NewProc("MapVirtualKeyW")
)

const (
	inputKeyboard  = 1
	keyeventfKeyup = 0x0002
	mapvkVkToVsc   = 0
)

type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type input struct {
	inputType uint32
	ki        keyboardInput
	padding   [8]byte // Padding to match C struct size
}

// platformTap posts a key press and release through SendInput
func platformTap(vk int) error {
	// Scan codes are required by applications that ignore the virtual key
	scan, _, _ := mapVirtualKeyW.Call(uintptr(vk), mapvkVkToVsc)

	inputs := []input{
		// Key down
		{
			inputType: inputKeyboard,
			ki: keyboardInput{
				wVk:   uint16(vk),
				wScan: uint16(scan),
			},
		},
		// Key up
		{
			inputType: inputKeyboard,
			ki: keyboardInput{
				wVk:     uint16(vk),
				wScan:   uint16(scan),
				dwFlags: keyeventfKeyup,
			},
		},
	}

	// A single call keeps the press and release adjacent in the input stream
	ret, _, err := sendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if ret == 0 {
		return fmt.Errorf("SendInput failed: %w", err)
	}

	return nil
}
