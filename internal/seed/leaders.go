package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/conn-castle/mockfactory/internal/cache"
	"github.com/conn-castle/mockfactory/internal/leadership"
	"github.com/conn-castle/mockfactory/internal/messages"
	"github.com/conn-castle/mockfactory/internal/svws"
)

// AssignLeaders runs the leadership phase: load the cached classes of the
// creation phase, fetch the staff roster, and assign two leaders per
// class under the fairness constraint.
func (r *Runner) AssignLeaders(ctx context.Context) (Report, error) {
	fmt.Fprintf(r.out, "%s\n\n", messages.LeadersHeader)

	cached, err := cache.Read(r.opts.CachePath)
	if err != nil {
		return Report{}, err
	}
	fmt.Fprintf(r.out, messages.LeadersCacheFmt, len(cached.Entries), cached.RunID)

	fmt.Fprintln(r.out, messages.LeadersLoadingStaff)
	staff, err := r.client.Lehrer(ctx)
	if err != nil {
		return Report{}, err
	}

	numClasses := len(cached.Entries)
	fmt.Fprintf(r.out, messages.LeadersRosterFmt, numClasses, len(staff))
	if len(staff) < numClasses {
		fmt.Fprintf(r.out, messages.LeadersRosterShortFmt, len(staff), numClasses)
	}
	fmt.Fprintln(r.out)

	staffIDs := make([]int64, 0, len(staff))
	for _, member := range staff {
		staffIDs = append(staffIDs, member.ID)
	}
	assigner, err := leadership.NewAssigner(staffIDs, r.opts.Rand)
	if err != nil {
		return Report{}, err
	}

	report := Report{}
	for idx, entry := range cached.Entries {
		assignment := assigner.Next()
		switch assignment.Fallback {
		case leadership.FallbackWidened:
			fmt.Fprintf(r.out, messages.LeadersWidenedFmt, idx+1, numClasses, entry.Kuerzel)
		case leadership.FallbackReplacement:
			fmt.Fprintf(r.out, messages.LeadersReplacementFmt, idx+1, numClasses, entry.Kuerzel)
		}

		pair := []int64{assignment.StaffIDs[0], assignment.StaffIDs[1]}
		if err := r.client.PatchKlassenleitungen(ctx, entry.ID, pair); err != nil {
			report.Failed++
			var apiErr *svws.APIError
			if errors.As(err, &apiErr) {
				fmt.Fprintf(r.out, messages.LeadersProgressFailFmt, idx+1, numClasses, entry.Kuerzel, color.RedString("✗"), apiErr.StatusCode, apiErr.Message)
			} else {
				fmt.Fprintf(r.out, messages.LeadersProgressErrFmt, idx+1, numClasses, entry.Kuerzel, color.RedString("✗"), err)
			}
			continue
		}
		report.Created++
		fmt.Fprintf(r.out, messages.LeadersProgressOKFmt, idx+1, numClasses, entry.Kuerzel, color.GreenString("✓"), pair)
	}

	fmt.Fprintf(r.out, messages.LeadersSummaryFmt, report.Created, report.Failed)
	fmt.Fprintln(r.out, messages.LeadersHistogramHeader)
	for _, bucket := range assigner.Histogram() {
		fmt.Fprintf(r.out, messages.LeadersHistogramLineFmt, bucket.Staff, bucket.Load)
	}
	if report.Failed == 0 {
		fmt.Fprintln(r.out, color.GreenString(messages.LeadersAllAssigned))
	} else {
		fmt.Fprintf(r.out, messages.LeadersSomeFailedFmt, report.Failed)
	}
	return report, nil
}
