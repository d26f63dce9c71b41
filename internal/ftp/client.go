package ftp

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"go-quality-report/internal/config"

	"github.com/jlaffaye/ftp"
)

// Client pulls spreadsheet extracts from the quality system's FTP drop.
type Client struct {
	conn   *ftp.ServerConn
	config config.FTPConfig
}

func NewClient(cfg config.FTPConfig) (*Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := ftp.Dial(addr, ftp.DialWithTimeout(30*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to FTP server: %w", err)
	}

	if err := conn.Login(cfg.Username, cfg.Password); err != nil {
		conn.Quit()
		return nil, fmt.Errorf("failed to login to FTP server: %w", err)
	}

	return &Client{
		conn:   conn,
		config: cfg,
	}, nil
}

// DownloadExtracts pulls every matching extract into localFolder. Each file
// is archived or deleted on the server right after a successful download so
// the next run never re-ingests it.
func (c *Client) DownloadExtracts(localFolder string) ([]string, error) {
	if err := os.MkdirAll(localFolder, 0755); err != nil {
		return nil, fmt.Errorf("failed to create local folder: %w", err)
	}

	if c.config.RemoteDir != "" {
		if err := c.conn.ChangeDir(c.config.RemoteDir); err != nil {
			return nil, fmt.Errorf("failed to change directory: %w", err)
		}
	}

	entries, err := c.conn.List(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var downloaded []string

	for _, entry := range entries {
		if entry.Type != ftp.EntryTypeFile {
			continue
		}

		if c.config.FilePattern != "" {
			matched, _ := filepath.Match(c.config.FilePattern, entry.Name)
			if !matched {
				continue
			}
		}

		localPath := filepath.Join(localFolder, entry.Name)

		if err := c.downloadFile(entry.Name, localPath); err != nil {
			return downloaded, fmt.Errorf("failed to download %s: %w", entry.Name, err)
		}

		downloaded = append(downloaded, localPath)

		if c.config.MoveAfterDownload && c.config.ArchiveDir != "" {
			if err := c.MoveFileWithTimestamp(entry.Name, c.config.ArchiveDir); err != nil {
				fmt.Printf("Warning: Failed to move %s to archive: %v\n", entry.Name, err)
			}
		} else if c.config.DeleteAfterDownload {
			if err := c.DeleteFile(entry.Name); err != nil {
				fmt.Printf("Warning: Failed to delete %s: %v\n", entry.Name, err)
			}
		}
	}

	return downloaded, nil
}

func (c *Client) downloadFile(remotePath, localPath string) error {
	resp, err := c.conn.Retr(remotePath)
	if err != nil {
		return err
	}
	defer resp.Close()

	localFile, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer localFile.Close()

	_, err = io.Copy(localFile, resp)
	return err
}

// MoveFileWithTimestamp moves a server file into destDir with a timestamp
// appended, keeping repeated archives of the same extract name apart.
// FTP rename wants POSIX paths on both sides.
func (c *Client) MoveFileWithTimestamp(sourceFile, destDir string) error {
	sourceFile = path.Clean(sourceFile)
	destDir = path.Clean(destDir)

	if err := c.ensureDir(destDir); err != nil {
		return fmt.Errorf("failed to ensure destination directory: %w", err)
	}

	filename := path.Base(sourceFile)
	ext := path.Ext(filename)
	nameWithoutExt := filename[:len(filename)-len(ext)]

	timestamp := time.Now().Format("20060102_150405")
	newFilename := fmt.Sprintf("%s_%s%s", nameWithoutExt, timestamp, ext)

	destPath := path.Join(destDir, newFilename)

	if err := c.conn.Rename(sourceFile, destPath); err != nil {
		return fmt.Errorf(
			"failed to move file from [%s] to [%s]: %w",
			sourceFile, destPath, err,
		)
	}

	return nil
}

// DeleteFile deletes a file from the FTP server.
func (c *Client) DeleteFile(remotePath string) error {
	if err := c.conn.Delete(remotePath); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", remotePath, err)
	}
	return nil
}

// ensureDir creates the directory if missing without disturbing the CWD.
func (c *Client) ensureDir(dir string) error {
	dir = path.Clean(dir)

	origDir, err := c.conn.CurrentDir()
	if err != nil {
		return err
	}

	if err := c.conn.ChangeDir(dir); err != nil {
		if err := c.conn.MakeDir(dir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	_ = c.conn.ChangeDir(origDir)
	return nil
}

func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Quit()
	}
	return nil
}
