package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/dashspecter/auditbuddy-automations-sub005/internal/pkg/validator"
	payrollService "github.com/dashspecter/auditbuddy-automations-sub005/internal/service/payroll"
	"github.com/spf13/cobra"
)

var outputFormats = []string{"json", "xlsx"}

type computeOptions struct {
	shiftsPath     string
	attendancePath string
	start          string
	end            string
	location       string
	timezone       string
	format         string
	output         string
}

func newComputeCmd() *cobra.Command {
	opts := &computeOptions{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute payroll from schedule and attendance snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.shiftsPath, "shifts", "", "Path to the shifts JSON snapshot")
	flags.StringVar(&opts.attendancePath, "attendance", "", "Path to the attendance JSON snapshot")
	flags.StringVar(&opts.start, "start", "", "Period start date (YYYY-MM-DD)")
	flags.StringVar(&opts.end, "end", "", "Period end date (YYYY-MM-DD)")
	flags.StringVar(&opts.location, "location", "", "Only include shifts at this location id")
	flags.StringVar(&opts.timezone, "timezone", "UTC", "Timezone of shift times of day")
	flags.StringVar(&opts.format, "format", "json", "Output format: json, xlsx")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file (json defaults to stdout, xlsx to the export filename)")
	_ = cmd.MarkFlagRequired("shifts")
	_ = cmd.MarkFlagRequired("attendance")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func runCompute(stdout, stderr io.Writer, opts *computeOptions) error {
	if !validator.IsInSlice(opts.format, outputFormats) {
		return fmt.Errorf("unsupported format %q", opts.format)
	}

	req := payroll.PreviewPayrollRequest{StartDate: opts.start, EndDate: opts.end}
	if opts.location != "" {
		location := opts.location
		req.LocationID = &location
	}
	if err := req.Validate(); err != nil {
		return err
	}
	start, end, err := req.Period()
	if err != nil {
		return err
	}

	tz, err := time.LoadLocation(opts.timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}

	shifts, err := loadShifts(opts.shiftsPath)
	if err != nil {
		return err
	}
	logs, err := loadAttendance(opts.attendancePath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	result, err := payrollService.NewEngine(tz, logger).Compute(shifts, logs, start, end, req.LocationID)
	if err != nil {
		return err
	}

	if opts.format == "xlsx" {
		return writeWorkbook(stdout, opts.output, result)
	}
	return writeJSONResult(stdout, opts.output, result)
}

func writeJSONResult(stdout io.Writer, output string, result payroll.PayrollResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err = stdout.Write(data)
		return err
	}
	return os.WriteFile(output, data, 0o644)
}

func writeWorkbook(stdout io.Writer, output string, result payroll.PayrollResult) error {
	data, err := payrollService.RenderWorkbook(result)
	if err != nil {
		return err
	}

	if output == "" {
		output = payrollService.ExportFilename(result)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Fprintln(stdout, output)
	return nil
}
