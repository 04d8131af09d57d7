package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/cloud-inquiry-balance-web/internal/inquiry/batch"
	"github.com/cloud-inquiry-balance-web/internal/presentation"
)

// renderer prints inquiry outcomes either as text through the presentation layer or as raw JSON
type renderer struct {
	out             io.Writer
	asJSON          bool
	defaultCurrency string
}

func (r *renderer) response(resp *inquiry.Response) error {
	if r.asJSON {
		return r.writeJSON(resp)
	}

	view := presentation.BuildView(resp, r.defaultCurrency)
	acc := view.Account

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACCOUNT")
	fmt.Fprintf(tw, "  Number\t%s\n", acc.Number)
	fmt.Fprintf(tw, "  Holder\t%s\n", acc.Name)
	fmt.Fprintf(tw, "  Status\t%s [%s]\n", acc.Status, acc.StatusCategory)
	fmt.Fprintf(tw, "  Available\t%s\n", acc.AvailableBalance)
	if acc.HasHold {
		fmt.Fprintf(tw, "  On hold\t%s\n", acc.HoldBalance)
	}
	fmt.Fprintf(tw, "  Type\t%s\n", acc.AccountType)
	fmt.Fprintf(tw, "  Currency\t%s\n", acc.Currency)
	fmt.Fprintf(tw, "  Branch\t%s\n", acc.BranchCode)
	fmt.Fprintf(tw, "  Opened\t%s\n", acc.OpenDate)
	fmt.Fprintf(tw, "  Last transaction\t%s\n", acc.LastTransactionDate)

	fmt.Fprintln(tw, "CUSTOMER")
	if !view.HasCustomer {
		fmt.Fprintf(tw, "  %s\n", presentation.CustomerUnavailableMessage)
		return tw.Flush()
	}

	cust := view.Customer
	fmt.Fprintf(tw, "  CIF\t%s\n", cust.CIF)
	fmt.Fprintf(tw, "  Name\t%s\n", cust.FullName)
	fmt.Fprintf(tw, "  Type\t%s\n", cust.CustomerType)
	fmt.Fprintf(tw, "  KYC\t%s [%s]\n", cust.KYCStatus, cust.KYCCategory)
	fmt.Fprintf(tw, "  Email\t%s\n", cust.Email)
	fmt.Fprintf(tw, "  Mobile\t%s\n", cust.Mobile)
	if cust.ShowPhone {
		fmt.Fprintf(tw, "  Phone\t%s\n", cust.Phone)
	}
	fmt.Fprintf(tw, "  Address\t%s, %s %s, %s\n", cust.Street, cust.CityProvince, cust.PostalCode, cust.Country)
	fmt.Fprintf(tw, "  Segment\t%s\n", cust.Segment)
	fmt.Fprintf(tw, "  Risk\t%s [%s]\n", cust.RiskRating, cust.RiskCategory)
	if cust.HasDateOfBirth {
		fmt.Fprintf(tw, "  Born\t%s\n", cust.DateOfBirth)
	}
	return tw.Flush()
}

func (r *renderer) failure(apiErr *inquiry.APIError) error {
	if r.asJSON {
		return r.writeJSON(apiErr)
	}

	view := presentation.BuildErrorView(apiErr)
	if view.Detail != "" {
		_, err := fmt.Fprintf(r.out, "%s: %s (%s)\n", view.Title, view.Message, view.Detail)
		return err
	}
	_, err := fmt.Fprintf(r.out, "%s: %s\n", view.Title, view.Message)
	return err
}

func (r *renderer) results(results []batch.Result) error {
	if r.asJSON {
		type entry struct {
			Account  string            `json:"account"`
			Response *inquiry.Response `json:"response,omitempty"`
			Error    *inquiry.APIError `json:"error,omitempty"`
		}
		entries := make([]entry, len(results))
		for i, res := range results {
			entries[i] = entry{Account: res.Account, Response: res.Response, Error: res.Err}
		}
		return r.writeJSON(entries)
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACCOUNT\tSTATUS\tAVAILABLE\tHOLDER\tRESULT")
	for _, res := range results {
		account := presentation.MaskAccountNumber(res.Account)
		if res.Err != nil {
			view := presentation.BuildErrorView(res.Err)
			fmt.Fprintf(tw, "%s\t-\t-\t-\t%s: %s\n", account, view.Title, view.Message)
			continue
		}
		view := presentation.BuildView(res.Response, r.defaultCurrency)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\tOK\n", account, view.Account.Status, view.Account.AvailableBalance, view.Account.Name)
	}
	return tw.Flush()
}

func (r *renderer) health(status inquiry.HealthStatus) error {
	return r.writeJSON(status)
}

func (r *renderer) event(event *inquiry.Event) error {
	if r.asJSON {
		return r.writeJSON(event)
	}
	_, err := fmt.Fprintf(r.out, "%s  %-7s %-12s %s %s (%dms) %s\n",
		event.OccurredAt.Format(time.RFC3339),
		event.Outcome, event.Source, event.AccountMasked,
		event.ResponseCode, event.LatencyMs, event.CorrelationID)
	return err
}

func (r *renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
