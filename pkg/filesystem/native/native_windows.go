package native

import (
	"os"
	"unsafe"

	"github.com/pkg/errors"

	"golang.org/x/sys/windows"

	"github.com/Microsoft/go-winio"
)

const (
	// symbolicLinkFlagAllowUnprivilegedCreate allows symbolic link creation
	// without elevation when developer mode is enabled.
	symbolicLinkFlagAllowUnprivilegedCreate = 0x2
	// maximumReparseDataBufferSize is the largest possible reparse buffer.
	maximumReparseDataBufferSize = 16 * 1024
)

var (
	// kernel32 is the kernel32 system library.
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	// procCopyFileW is the CopyFileW procedure.
	procCopyFileW = kernel32.NewProc("CopyFileW")
)

// windowsInterface implements Interface on top of the wide-character Win32
// file APIs.
type windowsInterface struct{}

// New returns the native implementation for the current platform.
func New() (Interface, error) {
	return &windowsInterface{}, nil
}

// convert maps a system error to an Errno when possible.
func convert(err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) {
		return Errno(errno)
	}
	return err
}

// utf16 converts a path to a NUL-terminated UTF-16 string.
func utf16(path string) (*uint16, error) {
	path16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, ErrorInvalidName
	}
	return path16, nil
}

// GetAttributes implements Interface.GetAttributes.
func (i *windowsInterface) GetAttributes(path string) (Attributes, error) {
	path16, err := utf16(path)
	if err != nil {
		return InvalidAttributes, err
	}
	attributes, err := windows.GetFileAttributes(path16)
	if err != nil {
		return InvalidAttributes, convert(err)
	}
	return Attributes(attributes), nil
}

// SetAttributes implements Interface.SetAttributes.
func (i *windowsInterface) SetAttributes(path string, attributes Attributes) error {
	path16, err := utf16(path)
	if err != nil {
		return err
	}
	return convert(windows.SetFileAttributes(path16, uint32(attributes)))
}

// CreateDirectory implements Interface.CreateDirectory.
func (i *windowsInterface) CreateDirectory(path string) error {
	path16, err := utf16(path)
	if err != nil {
		return err
	}
	return convert(windows.CreateDirectory(path16, nil))
}

// RemoveDirectory implements Interface.RemoveDirectory.
func (i *windowsInterface) RemoveDirectory(path string) error {
	path16, err := utf16(path)
	if err != nil {
		return err
	}
	return convert(windows.RemoveDirectory(path16))
}

// DeleteFile implements Interface.DeleteFile.
func (i *windowsInterface) DeleteFile(path string) error {
	path16, err := utf16(path)
	if err != nil {
		return err
	}
	return convert(windows.DeleteFile(path16))
}

// CopyFile implements Interface.CopyFile.
func (i *windowsInterface) CopyFile(source, target string, failIfExists bool) error {
	source16, err := utf16(source)
	if err != nil {
		return err
	}
	target16, err := utf16(target)
	if err != nil {
		return err
	}
	var fail uintptr
	if failIfExists {
		fail = 1
	}
	result, _, err := procCopyFileW.Call(
		uintptr(unsafe.Pointer(source16)),
		uintptr(unsafe.Pointer(target16)),
		fail,
	)
	if result == 0 {
		return convert(err)
	}
	return nil
}

// MoveFile implements Interface.MoveFile.
func (i *windowsInterface) MoveFile(source, target string) error {
	source16, err := utf16(source)
	if err != nil {
		return err
	}
	target16, err := utf16(target)
	if err != nil {
		return err
	}
	return convert(windows.MoveFileEx(source16, target16, 0))
}

// findData converts a system find record.
func findData(data *windows.Win32finddata) *FindData {
	return &FindData{
		Attributes:     Attributes(data.FileAttributes),
		CreationTime:   FileTime{data.CreationTime.LowDateTime, data.CreationTime.HighDateTime},
		LastAccessTime: FileTime{data.LastAccessTime.LowDateTime, data.LastAccessTime.HighDateTime},
		LastWriteTime:  FileTime{data.LastWriteTime.LowDateTime, data.LastWriteTime.HighDateTime},
		FileSizeHigh:   data.FileSizeHigh,
		FileSizeLow:    data.FileSizeLow,
		Reserved0:      data.Reserved0,
		Name:           windows.UTF16ToString(data.FileName[:]),
	}
}

// FindFirst implements Interface.FindFirst.
func (i *windowsInterface) FindFirst(pattern string) (Cursor, *FindData, error) {
	pattern16, err := utf16(pattern)
	if err != nil {
		return 0, nil, err
	}
	var data windows.Win32finddata
	handle, err := windows.FindFirstFile(pattern16, &data)
	if err != nil {
		return 0, nil, convert(err)
	}
	return Cursor(handle), findData(&data), nil
}

// FindNext implements Interface.FindNext.
func (i *windowsInterface) FindNext(cursor Cursor) (*FindData, error) {
	var data windows.Win32finddata
	if err := windows.FindNextFile(windows.Handle(cursor), &data); err != nil {
		return nil, convert(err)
	}
	return findData(&data), nil
}

// FindClose implements Interface.FindClose.
func (i *windowsInterface) FindClose(cursor Cursor) error {
	return convert(windows.FindClose(windows.Handle(cursor)))
}

// OpenHandle implements Interface.OpenHandle. Handles are always opened with
// backup semantics so that directories can be targeted.
func (i *windowsInterface) OpenHandle(path string, access Access, share Share, disposition Disposition) (Handle, error) {
	path16, err := utf16(path)
	if err != nil {
		return 0, err
	}
	handle, err := windows.CreateFile(
		path16,
		uint32(access),
		uint32(share),
		nil,
		uint32(disposition),
		windows.FILE_ATTRIBUTE_NORMAL|windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return 0, convert(err)
	}
	return Handle(handle), nil
}

// filetime converts an optional timestamp.
func filetime(t *FileTime) *windows.Filetime {
	if t == nil {
		return nil
	}
	return &windows.Filetime{LowDateTime: t.LowDateTime, HighDateTime: t.HighDateTime}
}

// SetTimes implements Interface.SetTimes.
func (i *windowsInterface) SetTimes(handle Handle, creation, lastAccess, lastWrite *FileTime) error {
	return convert(windows.SetFileTime(
		windows.Handle(handle),
		filetime(creation),
		filetime(lastAccess),
		filetime(lastWrite),
	))
}

// ReadHandle implements Interface.ReadHandle.
func (i *windowsInterface) ReadHandle(handle Handle, buffer []byte) (int, error) {
	var count uint32
	if err := windows.ReadFile(windows.Handle(handle), buffer, &count, nil); err != nil {
		return int(count), convert(err)
	}
	return int(count), nil
}

// WriteHandle implements Interface.WriteHandle.
func (i *windowsInterface) WriteHandle(handle Handle, buffer []byte) (int, error) {
	var count uint32
	if err := windows.WriteFile(windows.Handle(handle), buffer, &count, nil); err != nil {
		return int(count), convert(err)
	}
	return int(count), nil
}

// CloseHandle implements Interface.CloseHandle.
func (i *windowsInterface) CloseHandle(handle Handle) error {
	return convert(windows.CloseHandle(windows.Handle(handle)))
}

// CreateSymbolicLink implements Interface.CreateSymbolicLink. Unprivileged
// creation is attempted first, falling back to a plain request on systems that
// reject the flag.
func (i *windowsInterface) CreateSymbolicLink(link, target string, directory bool) error {
	link16, err := utf16(link)
	if err != nil {
		return err
	}
	target16, err := utf16(target)
	if err != nil {
		return err
	}
	var flags uint32
	if directory {
		flags |= windows.SYMBOLIC_LINK_FLAG_DIRECTORY
	}
	err = windows.CreateSymbolicLink(link16, target16, flags|symbolicLinkFlagAllowUnprivilegedCreate)
	if errors.Is(err, windows.ERROR_INVALID_PARAMETER) {
		err = windows.CreateSymbolicLink(link16, target16, flags)
	}
	return convert(err)
}

// ReadSymbolicLink implements Interface.ReadSymbolicLink.
func (i *windowsInterface) ReadSymbolicLink(path string) (target string, err error) {
	path16, err := utf16(path)
	if err != nil {
		return "", err
	}

	// Open the link itself rather than its target.
	handle, err := windows.CreateFile(
		path16,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_OPEN_REPARSE_POINT|windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return "", convert(err)
	}
	defer func() {
		if closeErr := windows.CloseHandle(handle); closeErr != nil && err == nil {
			target, err = "", convert(closeErr)
		}
	}()

	// Read the raw reparse buffer.
	buffer := make([]byte, maximumReparseDataBufferSize)
	var returned uint32
	if err := windows.DeviceIoControl(
		handle,
		windows.FSCTL_GET_REPARSE_POINT,
		nil,
		0,
		&buffer[0],
		uint32(len(buffer)),
		&returned,
		nil,
	); err != nil {
		return "", convert(err)
	}

	// Decode the reparse buffer.
	reparsePoint, err := winio.DecodeReparsePoint(buffer[:returned])
	if err != nil {
		return "", ErrorNotAReparsePoint
	} else if reparsePoint.IsMountPoint {
		return "", ErrorNotAReparsePoint
	}
	return reparsePoint.Target, nil
}

// LogicalDrives implements Interface.LogicalDrives.
func (i *windowsInterface) LogicalDrives() ([]string, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, convert(err)
	}
	var drives []string
	for letter := 0; letter < 26; letter++ {
		if mask&(1<<uint(letter)) != 0 {
			drives = append(drives, string(rune('A'+letter))+`:\`)
		}
	}
	return drives, nil
}

// WorkingDirectory implements Interface.WorkingDirectory.
func (i *windowsInterface) WorkingDirectory() (string, error) {
	return os.Getwd()
}
