package api

// TranscribePrompt asks for a transcript with light redaction only:
// fillers go, paragraphs appear, the spoken words stay untouched.
const TranscribePrompt = `Generate a transcript of this audio with the following light redactions:

1. Remove common filler words (um, uh, like, you know, so, actually, basically, etc.)
2. Organize the content into clear paragraphs based on topic shifts
3. Add proper spacing between paragraphs
4. Maintain the original content, meaning, and speaker's voice
5. Do NOT change the actual words or meaning beyond removing fillers
6. Do NOT add content that wasn't spoken
7. Preserve the natural flow and conversational tone

Output only the transcribed text with no additional commentary or formatting markers.`

// RedactPrompt applies the same light redaction to raw transcript text,
// for speech-to-text backends that return unredacted output.
const RedactPrompt = `Lightly redact the following raw transcript:

1. Remove common filler words (um, uh, like, you know, so, actually, basically, etc.)
2. Organize the content into clear paragraphs based on topic shifts
3. Add proper spacing between paragraphs
4. Maintain the original content, meaning, and speaker's voice
5. Do NOT change the actual words or meaning beyond removing fillers
6. Do NOT add content that wasn't spoken

Output only the redacted transcript with no additional commentary or formatting markers.`

// BlogPrompt converts a transcript into a formatted blog post. The
// transcript is appended directly after the trailing separator.
const BlogPrompt = `You are a professional blog writer. Convert the following transcript into a well-formatted, engaging blog post.

Requirements:
1. Create a compelling, SEO-friendly title
2. Write a brief, engaging introduction that hooks the reader
3. Organize the content into logical sections with clear subheadings (using ## for main sections, ### for subsections)
4. Ensure smooth transitions between sections
5. Add a conclusion that summarizes key points
6. Use proper markdown formatting:
   - Use **bold** for emphasis on important points
   - Use bullet points (-) for lists where appropriate
   - Use > blockquotes for notable quotes or key insights
   - Use code blocks (` + "```" + `) if technical content is discussed
7. Maintain the original meaning and insights from the transcript
8. Optimize for web readability (shorter paragraphs, clear structure)
9. Keep the author's voice and tone

Do NOT add:
- Meta descriptions or SEO tags
- Publishing dates or author bios
- Links or references not in the original content
- Content not present in the transcript

Output the blog post in markdown format, starting with the title as an H1 (#).

Here's the transcript:

---

`

// Blog generation sampling parameters, shared by all providers.
const (
	BlogTemperature     = 0.7
	BlogTopP            = 0.9
	BlogTopK            = 40
	BlogMaxOutputTokens = 8192
)
