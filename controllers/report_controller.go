package controllers

import (
	"fmt"
	"time"

	"plant-stock/middleware"
	"plant-stock/repositories"
	"plant-stock/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB   *gorm.DB
	repo *repositories.ReportRepository
}

func NewReportController(DB *gorm.DB) *ReportController {
	return &ReportController{DB: DB, repo: repositories.NewReportRepository(DB)}
}

func (c *ReportController) GetMonthlyReport(ctx *fiber.Ctx) error {
	productID, err := ctx.ParamsInt("productId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	month := ctx.QueryInt("month", int(time.Now().Month()))
	year := ctx.QueryInt("year", time.Now().Year())

	report, err := c.repo.GetMonthly(uint(productID), month, year, middleware.CurrentUser(ctx))
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Monthly report found", "data": report})
}

// GenerateMonthlyReport menghitung ulang dan menimpa cache laporan.
func (c *ReportController) GenerateMonthlyReport(ctx *fiber.Ctx) error {
	productID, err := ctx.ParamsInt("productId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	month := ctx.QueryInt("month", int(time.Now().Month()))
	year := ctx.QueryInt("year", time.Now().Year())

	report, err := c.repo.Generate(uint(productID), month, year, middleware.CurrentUser(ctx))
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Monthly report generated successfully", "data": report})
}

func (c *ReportController) GetDailyReport(ctx *fiber.Ctx) error {
	from, to, err := parseDateRange(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)

	rows, total, err := c.repo.DailyRange(middleware.CurrentUser(ctx), from, to, page, limit)
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Daily report found",
		"data": fiber.Map{
			"rows":          rows,
			"page":          page,
			"limit":         limit,
			"total_results": total,
		},
	})
}

// ExportDailyReport menulis laporan harian lengkap ke file Excel.
func (c *ReportController) ExportDailyReport(ctx *fiber.Ctx) error {
	from, to, err := parseDateRange(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Ambil seluruh hasil tanpa pagination untuk ekspor
	rows, total, err := c.repo.DailyRange(middleware.CurrentUser(ctx), from, to, 1, 1<<30)
	if err != nil {
		return utils.RespondError(ctx, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Stock Report"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Item Code", "Design Name", "Opening Stock", "Inward Qty", "Outward Qty", "Closing Stock"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		values := []interface{}{
			row.Date.Format("2006-01-02"),
			row.ItemCode,
			row.DesignName,
			row.OpeningStock,
			row.InwardQty,
			row.OutwardQty,
			row.ClosingStock,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write Excel file"})
	}

	filename := fmt.Sprintf("stock_report_%s_%s.xlsx", from.Format("20060102"), to.Format("20060102"))
	ctx.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("X-Total-Rows", fmt.Sprintf("%d", total))

	return ctx.Send(buf.Bytes())
}

func parseDateRange(ctx *fiber.Ctx) (time.Time, time.Time, error) {
	fromStr := ctx.Query("from")
	toStr := ctx.Query("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("from and to query parameters are required (YYYY-MM-DD)")
	}

	from, err := time.ParseInLocation("2006-01-02", fromStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %s", fromStr)
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %s", toStr)
	}
	return from, to, nil
}
