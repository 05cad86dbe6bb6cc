package model

// DefaultBookmarks returns the built-in seed used when no saved data exists.
// Each call returns a fresh slice.
func DefaultBookmarks() Collection {
	return Collection{
		{ID: 1, Name: "GitHub", URL: "https://github.com", Category: "Development", Icon: "🔗"},
		{ID: 2, Name: "Stack Overflow", URL: "https://stackoverflow.com", Category: "Development", Icon: "💬"},
		{ID: 3, Name: "MDN Web Docs", URL: "https://developer.mozilla.org", Category: "Documentation", Icon: "📚"},
		{ID: 4, Name: "Can I Use", URL: "https://caniuse.com", Category: "Tools", Icon: "🌐"},
		{ID: 5, Name: "Regex101", URL: "https://regex101.com", Category: "Tools", Icon: "🔍"},
		{ID: 6, Name: "JSON Formatter", URL: "https://jsonformatter.org", Category: "Tools", Icon: "📄"},
		{ID: 7, Name: "Base64 Encode/Decode", URL: "https://www.base64encode.org", Category: "Tools", Icon: "🔐"},
		{ID: 8, Name: "IP Address Lookup", URL: "https://www.whatismyip.com", Category: "Network", Icon: "🌍"},
		{ID: 9, Name: "Ping Test", URL: "https://www.cloudping.info", Category: "Network", Icon: "📡"},
		{ID: 10, Name: "SSL Labs Test", URL: "https://www.ssllabs.com/ssltest", Category: "Security", Icon: "🔒"},
		{ID: 11, Name: "VirusTotal", URL: "https://www.virustotal.com", Category: "Security", Icon: "🛡️"},
		{ID: 12, Name: "Have I Been Pwned", URL: "https://haveibeenpwned.com", Category: "Security", Icon: "🔓"},
		{ID: 13, Name: "Postman", URL: "https://www.postman.com", Category: "Development", Icon: "📮"},
		{ID: 14, Name: "Figma", URL: "https://www.figma.com", Category: "Design", Icon: "🎨"},
		{ID: 15, Name: "Cloudflare Status", URL: "https://www.cloudflarestatus.com", Category: "Monitoring", Icon: "☁️"},
		{ID: 16, Name: "AWS Status", URL: "https://status.aws.amazon.com", Category: "Monitoring", Icon: "☁️"},
	}
}
