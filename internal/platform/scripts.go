package platform

import (
	"fmt"
	"strings"
)

// appleScript builds the osascript source for a Notification Center banner.
// The subtitle names the application because osascript notifications are
// otherwise attributed to Script Editor.
func appleScript(title, body string) string {
	return fmt.Sprintf("display notification %q with title %q subtitle %q", body, title, AppName)
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// toastScript builds the PowerShell that raises a WinRT toast. A non-empty
// icon switches to the image template.
func toastScript(title, body, icon string) string {
	var sb strings.Builder
	sb.WriteString("[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null; ")
	kind := "ToastText02"
	if icon != "" {
		kind = "ToastImageAndText02"
	}
	fmt.Fprintf(&sb, "$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::%s); ", kind)
	sb.WriteString(`$texts = $template.GetElementsByTagName("text"); `)
	fmt.Fprintf(&sb, "$texts.Item(0).AppendChild($template.CreateTextNode(%s)) > $null; ", psQuote(title))
	fmt.Fprintf(&sb, "$texts.Item(1).AppendChild($template.CreateTextNode(%s)) > $null; ", psQuote(body))
	if icon != "" {
		fmt.Fprintf(&sb, `$template.GetElementsByTagName("image").Item(0).SetAttribute("src", %s); `, psQuote(icon))
	}
	sb.WriteString("$toast = [Windows.UI.Notifications.ToastNotification]::new($template); ")
	fmt.Fprintf(&sb, "[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($toast);", psQuote(AppName))
	return sb.String()
}
