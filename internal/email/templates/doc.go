// Package templates holds the HTML email templates shipped with the service
// and the substitution logic that renders them.
//
// Two kinds of templates exist. The fixed notification templates
// (RenderPortfolioResponse, RenderWelcomeUser) take typed data structs and
// substitute a fixed token set. The generic set rendered through Render is
// addressed by name, fills {{key}} tokens from a free-form variable map, and
// supports a single {{#if key}}...{{/if}} conditional block per template.
// Missing variables render as empty strings; values are substituted verbatim
// since templates and their variables come from trusted API clients.
package templates
