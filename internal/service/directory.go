package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"alumni_portal/internal/domain"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportSheet is the worksheet name of the directory export
const ExportSheet = "Alumni"

// ExportFilename is the download name of the directory export
const ExportFilename = "filtered_alumni_list.xlsx"

// ExportMIME is the content type of the directory export
const ExportMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHeaders is the fixed header row of the directory export
var ExportHeaders = []string{
	"Sr No.", "Name", "Department", "Graduation Year", "Current Role",
	"Company", "Location", "Industry", "Email", "LinkedIn",
}

// Filters narrows the directory. Zero values are ignored.
type Filters struct {
	Text       string // case-insensitive substring of name, company or current role
	Year       int    // exact graduation year
	Department string // exact department
	Industry   string // exact industry
}

// ParseFilters builds Filters from raw query values
func ParseFilters(text, year, department, industry string) (Filters, error) {
	f := Filters{Text: text, Department: department, Industry: industry}
	if year = strings.TrimSpace(year); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil || y <= 0 {
			return Filters{}, fmt.Errorf("%w: %q", ErrInvalidYear, year)
		}
		f.Year = y
	}
	return f, nil
}

// DirectoryService searches and exports alumni profiles
type DirectoryService struct {
	db *gorm.DB
}

// NewDirectoryService creates a DirectoryService
func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

// likeEscaper makes LIKE metacharacters in user text match literally. '!' is portable across MySQL and SQLite.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func (s *DirectoryService) query(ctx context.Context, f Filters) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&domain.Alumni{})
	if f.Text != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(f.Text)) + "%"
		q = q.Where("(LOWER(`name`) LIKE ? ESCAPE '!' OR LOWER(`company`) LIKE ? ESCAPE '!' OR LOWER(`current_role`) LIKE ? ESCAPE '!')", like, like, like)
	}
	if f.Year != 0 {
		q = q.Where("graduation_year = ?", f.Year)
	}
	if f.Department != "" {
		q = q.Where("department = ?", f.Department)
	}
	if f.Industry != "" {
		q = q.Where("industry = ?", f.Industry)
	}
	return q.Order("id")
}

// Search returns the matching alumni ordered by id
func (s *DirectoryService) Search(ctx context.Context, f Filters) ([]domain.Alumni, error) {
	var alumni []domain.Alumni
	if err := s.query(ctx, f).Find(&alumni).Error; err != nil {
		return nil, fmt.Errorf("search alumni: %w", err)
	}
	return alumni, nil
}

// Count returns the number of registered alumni
func (s *DirectoryService) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&domain.Alumni{}).Count(&total).Error
	return total, err
}

// Export renders the alumni matching f as an xlsx workbook
func (s *DirectoryService) Export(ctx context.Context, f Filters) ([]byte, error) {
	alumni, err := s.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	return writeWorkbook(alumni)
}

func writeWorkbook(alumni []domain.Alumni) ([]byte, error) {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName(book.GetSheetName(0), ExportSheet); err != nil {
		return nil, err
	}
	header := make([]any, len(ExportHeaders))
	for i, h := range ExportHeaders {
		header[i] = h
	}
	if err := book.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, a := range alumni {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			i + 1, a.Name, a.Department, a.GraduationYear, a.CurrentRole,
			a.Company, a.Location, a.Industry, a.Email, a.LinkedInURL,
		}
		if err := book.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	buf, err := book.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
