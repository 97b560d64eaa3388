package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"participant-cache/domain"
	"participant-cache/services"
	"sort"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// participantFile is the JSON shape accepted by "put".
type participantFile struct {
	ID           string         `json:"id"`
	RecordType   string         `json:"record_type"`
	Name         string         `json:"name"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	AvatarURL    string         `json:"avatar_url"`
	Presence     string         `json:"presence"`
	LastOnlineAt *time.Time     `json:"last_online_at"`
	CreatedAt    *time.Time     `json:"created_at"`
	UpdatedAt    *time.Time     `json:"updated_at"`
	CreatorID    string         `json:"creator_id"`
	OwnerID      string         `json:"owner_id"`
	Attributes   map[string]any `json:"attributes"`
}

func (f participantFile) toParticipant() (domain.Participant, error) {
	presence, err := domain.ParsePresence(f.Presence)
	if err != nil {
		return domain.Participant{}, err
	}
	recordType := f.RecordType
	if recordType == "" {
		recordType = domain.UserRecordType
	}
	return domain.Participant{
		ID:           f.ID,
		RecordType:   recordType,
		Name:         f.Name,
		Username:     f.Username,
		Email:        f.Email,
		AvatarURL:    f.AvatarURL,
		Presence:     presence,
		LastOnlineAt: utc(f.LastOnlineAt),
		CreatedAt:    utc(f.CreatedAt),
		UpdatedAt:    utc(f.UpdatedAt),
		CreatorID:    f.CreatorID,
		OwnerID:      f.OwnerID,
		Attributes:   f.Attributes,
	}, nil
}

func utc(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}

func putCommand(svc services.IParticipantCacheService, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("put", flag.ContinueOnError)
	file := fs.String("file", "", "participant JSON file, stdin when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return fmt.Errorf("open participant file: %w", err)
		}
		defer f.Close()
		in = f
	}

	var pf participantFile
	if err := json.NewDecoder(in).Decode(&pf); err != nil {
		return fmt.Errorf("parse participant: %w", err)
	}
	p, err := pf.toParticipant()
	if err != nil {
		return err
	}
	if err := svc.Save(p); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "cached participant %s\n", p.ID)
	return nil
}

func getCommand(svc services.IParticipantCacheService, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	id := fs.String("id", "", "participant id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	p, err := svc.Load(*id)
	if err != nil {
		return err
	}
	return renderParticipant(stdout, p)
}

func deleteCommand(svc services.IParticipantCacheService, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	ids := fs.String("id", "", "comma separated participant ids")
	if err := fs.Parse(args); err != nil {
		return err
	}
	list := lo.Compact(lo.Map(strings.Split(*ids, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	if len(list) == 0 {
		return fmt.Errorf("-id is required")
	}

	var err error
	for _, id := range list {
		if e := svc.Forget(id); e != nil {
			err = multierr.Append(err, e)
			continue
		}
		fmt.Fprintf(stdout, "forgot participant %s\n", id)
	}
	return err
}

func renderParticipant(w io.Writer, p domain.Participant) error {
	fmt.Fprintln(w, color.New(color.BgBlack, color.FgGreen).Render(" "+p.DisplayName()+" "))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	table.Append([]string{"id", p.ID})
	table.Append([]string{"record_type", p.RecordType})
	table.Append([]string{"name", p.Name})
	table.Append([]string{"username", p.Username})
	table.Append([]string{"email", p.Email})
	table.Append([]string{"avatar_url", p.AvatarURL})
	table.Append([]string{"presence", p.Presence.String()})
	table.Append([]string{"last_online_at", formatTime(p.LastOnlineAt)})
	table.Append([]string{"created_at", formatTime(p.CreatedAt)})
	table.Append([]string{"updated_at", formatTime(p.UpdatedAt)})
	table.Append([]string{"creator_id", p.CreatorID})
	table.Append([]string{"owner_id", p.OwnerID})

	keys := lo.Keys(p.Attributes)
	sort.Strings(keys)
	for _, k := range keys {
		raw, err := json.Marshal(p.Attributes[k])
		if err != nil {
			return fmt.Errorf("render attribute %q: %w", k, err)
		}
		table.Append([]string{"attributes." + k, string(raw)})
	}
	table.Render()
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}
