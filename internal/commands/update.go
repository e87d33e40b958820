package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AppointmentService/internal/commands/options"
	"github.com/m04kA/SMC-AppointmentService/internal/printers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

func addUpdate(topLevel *cobra.Command, rt *Runtime) {
	ao := &options.AppointmentOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change an existing appointment",
		Long: `Change an existing appointment. Fields not given on the command line keep their
current values. The conflict rules are checked again, ignoring the appointment itself.`,
		Example: `
apptctl update 3 --start 09:30 --end 10:30
apptctl update 0 --note ""
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			id, err := parseID(args[0])
			if err != nil {
				return oo.HandleError(out, err)
			}

			current, err := rt.Appointments.GetByID(cmd.Context(), id)
			if err != nil {
				return oo.HandleError(out, err)
			}

			req := mergeUpdate(cmd, current, ao)
			resp, err := rt.Appointments.Update(cmd.Context(), id, req)
			if err != nil {
				return oo.HandleError(out, err)
			}

			if oo.JSON {
				return printers.JSON(out, resp)
			}
			_, _ = color.New(color.FgGreen).Fprintf(out, "Updated #%d\n", resp.ID)
			printers.Appointment(out, resp)
			return nil
		},
	}
	options.AddAppointmentArgs(cmd, ao)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

// mergeUpdate берёт из флагов только явно заданные поля
func mergeUpdate(cmd *cobra.Command, current *models.AppointmentResponse, ao *options.AppointmentOptions) *models.UpdateAppointmentRequest {
	req := &models.UpdateAppointmentRequest{
		ClientName: current.ClientName,
		Phone:      current.Phone,
		Date:       current.Date,
		StartTime:  current.StartTime,
		EndTime:    current.EndTime,
		Note:       current.Note,
	}

	flags := cmd.Flags()
	if flags.Changed(options.FlagName) {
		req.ClientName = ao.Name
	}
	if flags.Changed(options.FlagPhone) {
		req.Phone = ao.Phone
	}
	if flags.Changed(options.FlagDate) {
		req.Date = ao.Date
	}
	if flags.Changed(options.FlagStart) {
		req.StartTime = ao.StartTime
	}
	if flags.Changed(options.FlagEnd) {
		req.EndTime = ao.EndTime
	}
	if flags.Changed(options.FlagNote) {
		req.Note = ao.Note
	}
	return req
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid appointment id %q", s)
	}
	return id, nil
}
