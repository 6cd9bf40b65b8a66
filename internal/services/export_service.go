package services

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/export"
	"backoffice/internal/listview"
	"backoffice/internal/utils"
)

// ExportRequest describes one export: an entity, an output format, the list
// filters in effect, and optionally an explicit selection of record ids. With
// no ids the whole filtered collection is exported.
type ExportRequest struct {
	Entity      domain.Entity
	Format      export.Format
	Query       ListQuery
	SelectedIDs []string
	RequestedBy string
}

// Artifact is a rendered export ready to stream to the operator.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
	RowCount    int
}

// HistorySink records export jobs; the MySQL repository satisfies it.
type HistorySink interface {
	Insert(h models.NewExportHistory) (int64, error)
	MarkStatus(id int64, status models.ExportStatus, rowCount int) error
}

// ExportService renders export artifacts and keeps the audit trail. One
// preparation runs at a time; a repeat request while preparing is rejected
// instead of producing duplicate downloads.
type ExportService struct {
	Lists   *ListService
	History HistorySink
	Clock   func() time.Time

	job export.Job
}

func (s *ExportService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// Export runs one export job end to end.
func (s *ExportService) Export(ctx context.Context, req ExportRequest) (Artifact, error) {
	if err := s.job.Begin(); err != nil {
		return Artifact{}, err
	}

	artifact, err := s.prepare(ctx, req)
	s.job.Finish(err)
	if err != nil {
		utils.LogEvent("", "export", "failed",
			fmt.Sprintf("entity=%s format=%s err=%v", req.Entity.Name, req.Format, err))
		return Artifact{}, err
	}
	utils.LogEvent("", "export", "completed",
		fmt.Sprintf("entity=%s format=%s rows=%d file=%s",
			req.Entity.Name, req.Format, artifact.RowCount, artifact.Filename))
	return artifact, nil
}

func (s *ExportService) prepare(ctx context.Context, req ExportRequest) (Artifact, error) {
	filename := export.Filename(req.Entity.Name, req.Format, s.now())

	var historyID int64
	if s.History != nil {
		id, err := s.History.Insert(models.NewExportHistory{
			Entity:      req.Entity.Name,
			Format:      string(req.Format),
			Filename:    filename,
			RequestedBy: req.RequestedBy,
		})
		if err != nil {
			return Artifact{}, err
		}
		historyID = id
	}

	artifact, err := s.render(ctx, req, filename)

	if s.History != nil {
		status := models.ExportStatusCompleted
		if err != nil {
			status = models.ExportStatusFailed
		}
		if markErr := s.History.MarkStatus(historyID, status, artifact.RowCount); markErr != nil {
			utils.LogEvent("", "export", "history_update_failed", markErr.Error())
		}
	}
	return artifact, err
}

func (s *ExportService) render(ctx context.Context, req ExportRequest, filename string) (Artifact, error) {
	records, err := s.Lists.Records(ctx, req.Entity, req.Query)
	if err != nil {
		return Artifact{}, err
	}

	if len(req.SelectedIDs) > 0 {
		tracker := listview.NewTracker()
		tracker.SetAll(req.SelectedIDs, true)
		records = tracker.SelectedOf(records, req.Entity.IDField)
	}

	cfg := ViewFor(req.Entity)
	title := fmt.Sprintf("%s export", req.Entity.Name)

	var data []byte
	switch req.Format {
	case export.FormatXLSX:
		data, err = export.Workbook(records, cfg.Columns, req.Entity.Name)
	case export.FormatPDF:
		data, err = export.TabularPDF(records, cfg.Columns, title)
	case export.FormatHTML:
		data = []byte(export.PrintableHTML(records, cfg.Columns, title))
	case export.FormatTSV:
		data = []byte(export.ClipboardTSV(records, cfg.Columns))
	default:
		return Artifact{}, domain.ValidationError{Field: "format", Msg: "unsupported export format"}
	}
	if err != nil {
		return Artifact{}, domain.InternalError{Msg: "failed to render export", Err: err}
	}

	return Artifact{
		Filename:    filename,
		ContentType: req.Format.ContentType(),
		Data:        data,
		RowCount:    len(records),
	}, nil
}
