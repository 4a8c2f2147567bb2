package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tikey/worlds/pkg/catalog"
	"github.com/tikey/worlds/pkg/utils"
)

// DownloadProgress is one update of a running download. Exactly one update
// with status "complete" or "error" ends a run.
type DownloadProgress struct {
	Completed int
	Total     int
	Title     string
	Status    string // "downloading", "complete", "error"
	Message   string // log line for this update, when non-empty
	Err       error
}

// Outcome summarizes one finished download run.
type Outcome struct {
	Attempted int
	Succeeded int
}

// Downloader fetches selected catalog entries to disk, strictly one at a
// time, reporting progress on a channel.
type Downloader struct {
	client       *utils.Client
	progressChan chan DownloadProgress
}

func NewDownloader() *Downloader {
	return &Downloader{
		client:       utils.NewClient(30 * time.Second),
		progressChan: make(chan DownloadProgress, 100),
	}
}

// GetProgressChannel returns the channel carrying progress updates.
func (d *Downloader) GetProgressChannel() <-chan DownloadProgress {
	return d.progressChan
}

// DownloadAll fetches each entry's JSON payload into <outDir>/json and,
// when withPreview is set, its preview image into <outDir>/preview, in input
// order. The first failure aborts the run; already written files are left
// as-is. Two titles that sanitize to the same name overwrite each other
// silently.
func (d *Downloader) DownloadAll(entries []catalog.Entry, outDir string, withPreview bool) (Outcome, error) {
	total := len(entries)
	for i, entry := range entries {
		d.send(DownloadProgress{
			Completed: i,
			Total:     total,
			Title:     entry.Title,
			Status:    "downloading",
			Message:   fmt.Sprintf("downloading %s", entry.Title),
		})

		if err := d.downloadEntry(entry, outDir, withPreview); err != nil {
			d.progressChan <- DownloadProgress{
				Completed: i,
				Total:     total,
				Title:     entry.Title,
				Status:    "error",
				Message:   fmt.Sprintf("download failed: %s", err),
				Err:       err,
			}
			return Outcome{Attempted: i + 1, Succeeded: i}, err
		}

		d.send(DownloadProgress{
			Completed: i + 1,
			Total:     total,
			Title:     entry.Title,
			Status:    "downloading",
		})
	}

	// Terminal updates block so they are never dropped.
	d.progressChan <- DownloadProgress{
		Completed: total,
		Total:     total,
		Status:    "complete",
		Message:   fmt.Sprintf("finished, %d downloaded", total),
	}
	return Outcome{Attempted: total, Succeeded: total}, nil
}

func (d *Downloader) downloadEntry(entry catalog.Entry, outDir string, withPreview bool) error {
	name := utils.SafeFilename(entry.Title)

	jsonPath := filepath.Join(outDir, "json", name+utils.ExtFromURL(entry.JSONURL, ".json"))
	n, err := d.fetchToFile(entry.JSONURL, jsonPath)
	if err != nil {
		return err
	}
	d.log(fmt.Sprintf("json: %s (%s)", jsonPath, humanize.Bytes(uint64(n))))

	if withPreview && entry.PreviewURL != "" {
		previewPath := filepath.Join(outDir, "preview", name+utils.ExtFromURL(entry.PreviewURL, ".webp"))
		n, err := d.fetchToFile(entry.PreviewURL, previewPath)
		if err != nil {
			return err
		}
		d.log(fmt.Sprintf("preview: %s (%s)", previewPath, humanize.Bytes(uint64(n))))
	}

	return nil
}

// fetchToFile downloads url into path, creating parent directories on
// demand, and returns the number of bytes written.
func (d *Downloader) fetchToFile(url, path string) (int, error) {
	data, err := d.client.Fetch(url)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return len(data), nil
}

func (d *Downloader) log(message string) {
	d.send(DownloadProgress{Status: "downloading", Message: message})
}

// send delivers a progress update without blocking the transfer loop.
func (d *Downloader) send(progress DownloadProgress) {
	select {
	case d.progressChan <- progress:
	default:
	}
}

// Close releases the progress channel once no more runs will be started.
func (d *Downloader) Close() {
	close(d.progressChan)
}
