package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Devraj326/Vedss/internal/models"
	appErrors "github.com/Devraj326/Vedss/pkg/errors"
	"github.com/Devraj326/Vedss/pkg/export"
)

// Export output formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

type noteLister interface {
	List(ctx context.Context) ([]models.Note, error)
}

type eventLister interface {
	List(ctx context.Context) ([]models.Event, error)
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// ExportResult bundles rendered bytes with download metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders notes and events as downloadable CSV or PDF files.
type ExportService struct {
	notes  noteLister
	events eventLister
	csv    datasetRenderer
	pdf    datasetRenderer
}

// NewExportService constructs an ExportService.
func NewExportService(notes noteLister, events eventLister, csv, pdf datasetRenderer) *ExportService {
	return &ExportService{notes: notes, events: events, csv: csv, pdf: pdf}
}

// ExportNotes renders all notes in the requested format.
func (s *ExportService) ExportNotes(ctx context.Context, format string) (*ExportResult, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Title:   "Notes",
		Headers: []string{"Title", "Type", "Mood", "Tags", "Pinned", "Created", "Content"},
		Rows:    make([][]string, 0, len(notes)),
	}
	for _, note := range notes {
		data.Rows = append(data.Rows, []string{
			note.Title,
			note.Type,
			note.Mood,
			strings.Join(note.Tags, ", "),
			strconv.FormatBool(note.Pinned),
			note.CreatedAt.Format("2006-01-02"),
			note.Content,
		})
	}
	return s.render("notes", format, data)
}

// ExportEvents renders all calendar events in the requested format.
func (s *ExportService) ExportEvents(ctx context.Context, format string) (*ExportResult, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Title:   "Calendar Events",
		Headers: []string{"Title", "Date", "Time", "Type", "Priority", "Recurring", "Description"},
		Rows:    make([][]string, 0, len(events)),
	}
	for _, event := range events {
		data.Rows = append(data.Rows, []string{
			event.Title,
			event.Date.Format("2006-01-02"),
			event.EventTime,
			event.Type,
			event.Priority,
			strconv.FormatBool(event.Recurring),
			event.Description,
		})
	}
	return s.render("events", format, data)
}

func (s *ExportService) render(name, format string, data export.Dataset) (*ExportResult, error) {
	stamp := time.Now().UTC().Format("20060102")
	switch format {
	case FormatCSV, "":
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("%s-%s.csv", name, stamp),
		}, nil
	case FormatPDF:
		content, err := s.pdf.Render(data)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("%s-%s.pdf", name, stamp),
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
