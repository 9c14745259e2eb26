package report

import (
	"fmt"
	"strconv"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/attendance"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/format"
)

const (
	// NoPhoto marks rows that never had a photo.
	NoPhoto = "No Photo"
	// PhotoUnavailable replaces a photo that could not be fetched or decoded.
	PhotoUnavailable = "Foto tidak dapat dimuat"
)

func photoCell(path string, img *report.Image) report.Cell {
	switch {
	case path == "":
		return report.Text(NoPhoto)
	case img == nil:
		return report.Text(PhotoUnavailable)
	default:
		return report.Cell{Image: img}
	}
}

func imageAt(images []*report.Image, i int) *report.Image {
	if i < len(images) {
		return images[i]
	}
	return nil
}

func coordinates(a attendance.Attendance) string {
	if a.Latitude == nil || a.Longitude == nil {
		return "-"
	}
	return fmt.Sprintf("%.6f, %.6f", *a.Latitude, *a.Longitude)
}

// AttendanceRekap renders clock-ins with their selfies. images[i] belongs to
// rows[i]; a nil entry prints a placeholder instead of a picture.
func AttendanceRekap(rows []attendance.Attendance, images []*report.Image, h Header, imageWidthMM float64) *report.Document {
	doc := &report.Document{
		Title:       "Rekap Absensi Karyawan",
		Meta:        h.meta(),
		Orientation: report.Portrait,
		Columns: []report.Column{
			{Header: "No", Width: 1, Align: report.AlignCenter},
			{Header: "Nama", Width: 3},
			{Header: "SPBU", Width: 2},
			{Header: "Waktu", Width: 3},
			{Header: "Lokasi", Width: 3},
			{Header: "Foto", Width: 3, Align: report.AlignCenter},
		},
		ImageWidthMM: imageWidthMM,
		Filename:     h.filename("Rekap_Absensi"),
		GeneratedAt:  h.GeneratedAt,
	}
	for i, a := range rows {
		station := "-"
		if a.Spbu != nil && a.Spbu.CodeSpbu != "" {
			station = a.Spbu.CodeSpbu
		}
		doc.Rows = append(doc.Rows, report.Row{Cells: []report.Cell{
			report.Text(strconv.Itoa(i + 1)),
			report.Text(a.UserName()),
			report.Text(station),
			report.Text(format.DateTime(a.CreatedAt.Time, h.Location)),
			report.Text(coordinates(a)),
			photoCell(a.Photo, imageAt(images, i)),
		}})
	}
	return doc
}

// AbsenceRekap renders leave requests with their attachments.
func AbsenceRekap(rows []attendance.Absence, images []*report.Image, h Header, imageWidthMM float64) *report.Document {
	doc := &report.Document{
		Title:       "Rekap Pengajuan Izin / Sakit",
		Meta:        h.meta(),
		Orientation: report.Portrait,
		Columns: []report.Column{
			{Header: "No", Width: 1, Align: report.AlignCenter},
			{Header: "Nama", Width: 3},
			{Header: "Jenis", Width: 1.5},
			{Header: "Tanggal", Width: 3},
			{Header: "Alasan", Width: 4},
			{Header: "Lampiran", Width: 3, Align: report.AlignCenter},
		},
		ImageWidthMM: imageWidthMM,
		Filename:     h.filename("Rekap_Izin"),
		GeneratedAt:  h.GeneratedAt,
	}
	for i, a := range rows {
		doc.Rows = append(doc.Rows, report.Row{Cells: []report.Cell{
			report.Text(strconv.Itoa(i + 1)),
			report.Text(a.UserName()),
			report.Text(string(a.JenisPengajuan)),
			report.Stack(
				format.Date(a.TanggalAwal.Time, h.Location),
				"s/d "+format.Date(a.TanggalAkhir.Time, h.Location),
			),
			report.Text(format.Fallback(a.Alasan)),
			photoCell(a.Lampiran, imageAt(images, i)),
		}})
	}
	return doc
}
