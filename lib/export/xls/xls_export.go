package xlsexport

import (
	"bytes"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"resume-flow-backend/models"
	analyticsapimodels "resume-flow-backend/models/api/analytics"
)

type Provider interface {
	// ExportAnalytics renders the overdue leaderboard and the status
	// breakdown as a two-sheet workbook.
	ExportAnalytics(summary analyticsapimodels.Summary) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

func NewInstance() Provider {
	return impl{}
}

type impl struct{}

var overdueHeaders = []string{"用户名", "姓名", "角色", "部门", "本年超期次数"}

var statusHeaders = []string{"状态", "数量"}

func (i impl) ExportAnalytics(summary analyticsapimodels.Summary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("关闭导出文件失败")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, overdueHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "写入超期统计表头失败")
	}
	if len(summary.OverdueUsers) != 0 {
		if row, err = writeOverdueUsers(f, sheet, summary.OverdueUsers, row); err != nil {
			return nil, errors.Wrap(err, "写入超期统计数据失败")
		}
	}
	f.SetSheetName(sheet, "超期统计")

	statusSheet := "状态统计"
	if _, err = f.NewSheet(statusSheet); err != nil {
		return nil, errors.Wrap(err, "创建状态统计页失败")
	}
	if err = writeStatusCounts(f, statusSheet, summary.ByStatus); err != nil {
		return nil, errors.Wrap(err, "写入状态统计失败")
	}
	return f.WriteToBuffer()
}

func writeOverdueUsers(f *excelize.File, sheet string, list []analyticsapimodels.OverdueUser, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(overdueHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Username); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.DisplayName); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Role.ToHuman()); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.DepartmentName); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Count); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeStatusCounts(f *excelize.File, sheet string, byStatus map[string]int) error {
	row, err := writeHeader(f, sheet, 0, statusHeaders)
	if err != nil {
		return err
	}
	statuses := make([]string, 0, len(byStatus))
	for status := range byStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(statusHeaders), len(statuses)+1); err != nil {
		return err
	}
	for _, status := range statuses {
		row++
		if err = writeColumn(f, sheet, 1, row, models.ResumeStatus(status).ToHuman()); err != nil {
			return err
		}
		if err = writeColumn(f, sheet, 2, row, byStatus[status]); err != nil {
			return err
		}
	}
	return nil
}
