package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// NotifyRosterStore defines the database operations needed for sending
// roster publication notifications
type NotifyRosterStore interface {
	GetRosterPeriod(ctx context.Context, rosterPeriodID string) (*model.RosterPeriod, error)
	GetAssignments(ctx context.Context, rosterPeriodID string) ([]model.ShiftAssignment, error)
	ListActiveMembers(ctx context.Context, station model.Station) ([]model.Member, error)
}

// EmailSender sends a single email. Implemented by the gmail client.
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// NotifyRosterResult contains the notification outcome
type NotifyRosterResult struct {
	RosterPeriodID string
	EmailsSent     int
	Skipped        []string // member IDs with no email address or no assignments
}

// NotifyRoster emails each rostered member their shifts for a published
// roster period. Drafts cannot be notified; members without an email
// address are skipped and reported rather than failing the run.
func NotifyRoster(
	ctx context.Context,
	store NotifyRosterStore,
	sender EmailSender,
	logger *zap.Logger,
	rosterPeriodID string,
) (*NotifyRosterResult, error) {
	logger.Debug("Starting notifyRoster", zap.String("roster_period_id", rosterPeriodID))

	period, err := store.GetRosterPeriod(ctx, rosterPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster period: %w", err)
	}
	if period == nil {
		return nil, fmt.Errorf("%w: %s", ErrRosterNotFound, rosterPeriodID)
	}

	if period.Status == model.RosterDraft {
		return nil, fmt.Errorf("roster %s is still a draft - publish it before notifying members", rosterPeriodID)
	}

	assignments, err := store.GetAssignments(ctx, rosterPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	members, err := store.ListActiveMembers(ctx, period.Station)
	if err != nil {
		return nil, fmt.Errorf("failed to list active members: %w", err)
	}
	memberByID := make(map[string]model.Member, len(members))
	for _, m := range members {
		memberByID[m.ID] = m
	}

	byMember := make(map[string][]model.ShiftAssignment)
	for _, a := range assignments {
		byMember[a.MemberID] = append(byMember[a.MemberID], a)
	}

	result := &NotifyRosterResult{RosterPeriodID: rosterPeriodID, Skipped: []string{}}

	// Deterministic send order
	memberIDs := make([]string, 0, len(byMember))
	for id := range byMember {
		memberIDs = append(memberIDs, id)
	}
	sort.Strings(memberIDs)

	for _, memberID := range memberIDs {
		member, ok := memberByID[memberID]
		if !ok || member.Email == "" {
			result.Skipped = append(result.Skipped, memberID)
			logger.Warn("Skipping member with no email address", zap.String("member_id", memberID))
			continue
		}

		subject := fmt.Sprintf("Roster published: %s - %s",
			period.StartDate.Format("2006-01-02"), period.EndDate.Format("2006-01-02"))
		body := buildRosterEmail(member, period, byMember[memberID])

		if err := sender.SendEmail(member.Email, subject, body); err != nil {
			return result, fmt.Errorf("failed to send roster email to %s: %w", memberID, err)
		}
		result.EmailsSent++
	}

	logger.Info("Roster notifications sent",
		zap.String("roster_period_id", rosterPeriodID),
		zap.Int("emails_sent", result.EmailsSent),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

// buildRosterEmail renders the per-member shift list
func buildRosterEmail(member model.Member, period *model.RosterPeriod, shifts []model.ShiftAssignment) string {
	sorted := make([]model.ShiftAssignment, len(shifts))
	copy(sorted, shifts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", member.Name)
	fmt.Fprintf(&b, "The roster for %s to %s has been published. Your shifts:\n\n",
		period.StartDate.Format("Mon Jan 02 2006"), period.EndDate.Format("Mon Jan 02 2006"))

	var totalHours float64
	for _, s := range sorted {
		fmt.Fprintf(&b, "  %s  %-10s %s-%s\n",
			s.Date.Format("Mon Jan 02"), s.Type, s.StartTime, s.EndTime)
		totalHours += s.Hours
	}

	fmt.Fprintf(&b, "\nTotal: %d shifts, %.1f hours\n", len(sorted), totalHours)
	return b.String()
}
