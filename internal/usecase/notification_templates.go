package usecase

import (
	"fmt"

	"fieldserve/internal/domain/entities"
)

// Category-specific notification copy. These render the tenant-facing text
// for the in-app feed and the outbound channels; literal delivery happens
// behind the transport ports.

func statusChangeCopy(w entities.WorkOrder, from, to entities.Status) (title, message string, severity entities.NotificationSeverity) {
	severity = entities.SeverityInfo
	label := w.QuoteNumber
	if label == "" {
		label = w.ID
	}

	switch to {
	case entities.StatusSent:
		title = "Quote Sent"
		message = fmt.Sprintf("Quote %s was sent to the customer via %s.", label, orUnknown(w.DeliveryMethod))
	case entities.StatusPresented:
		title = "Quote Presented"
		message = fmt.Sprintf("Quote %s was presented by %s. Customer reaction: %s.", label, orUnknown(w.PresentedBy), orUnknown(w.CustomerReaction))
	case entities.StatusApproved:
		title = "Quote Approved"
		message = fmt.Sprintf("Quote %s was approved by the customer. Total %s.", label, w.TotalAmount.StringFixed(2))
	case entities.StatusRejected:
		title = "Quote Rejected"
		severity = entities.SeverityWarning
		message = fmt.Sprintf("Quote %s was rejected (%s).", label, orUnknown(w.RejectionReason))
	case entities.StatusChangesRequested:
		title = "Changes Requested"
		message = fmt.Sprintf("The customer requested changes to quote %s: %s.", label, orUnknown(w.ChangeDetails))
	case entities.StatusFollowUp:
		title = "Follow-Up Scheduled"
		message = fmt.Sprintf("A follow-up on quote %s was scheduled via %s.", label, orUnknown(w.FollowUpMethod))
	case entities.StatusExpired:
		title = "Quote Expired"
		severity = entities.SeverityWarning
		message = fmt.Sprintf("Quote %s expired and was archived.", label)
	case entities.StatusCancelled:
		title = "Work Order Cancelled"
		severity = entities.SeverityWarning
		message = fmt.Sprintf("Work order %s was cancelled.", label)
	case entities.StatusScheduled:
		title = "Job Scheduled"
		message = fmt.Sprintf("Job %s was scheduled.", label)
	case entities.StatusInProgress:
		title = "Job Started"
		message = fmt.Sprintf("Work started on job %s.", label)
	case entities.StatusCompleted:
		title = "Job Completed"
		message = fmt.Sprintf("Job %s was completed.", label)
	default:
		title = "Status Updated"
		message = fmt.Sprintf("Work order %s moved from %s to %s.", label, from, to)
	}

	// Renewal loops back into sent from expired; call that out explicitly.
	if to == entities.StatusSent && from == entities.StatusExpired {
		title = "Quote Renewed"
		message = fmt.Sprintf("Expired quote %s was renewed and re-sent.", label)
	}
	return title, message, severity
}

func inventoryLowMessage(itemName string, available, reorderPoint int) string {
	if available <= 0 {
		return fmt.Sprintf("%s is out of stock.", itemName)
	}
	return fmt.Sprintf("%s is down to %d units (reorder point %d).", itemName, available, reorderPoint)
}

func invoiceOverdueMessage(invoiceNumber string, daysOverdue int) string {
	return fmt.Sprintf("Invoice %s is %d days overdue.", invoiceNumber, daysOverdue)
}

func renderEmail(ev DomainEvent) (subject, body string) {
	subject = fmt.Sprintf("[%s] %s", ev.Category, ev.Title)
	body = fmt.Sprintf("%s\n\n%s\n\nReference: %s", ev.Title, ev.Message, ev.RelatedID)
	return subject, body
}

func renderSMS(ev DomainEvent) string {
	return fmt.Sprintf("%s: %s", ev.Title, ev.Message)
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
