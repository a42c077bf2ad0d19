package portfolio

// markupTemplate is the page body shared by the escaping (html/template) and
// legacy (text/template) renderers, so it must stay valid for both.
const markupTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{or .Name "Portfolio"}} - {{or .Title "Professional Portfolio"}}</title>
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&family=JetBrains+Mono:wght@400;600&family=Poppins:wght@400;500;600;700&family=Source+Sans+Pro:wght@400;600;700&family=DM+Sans:wght@400;500;700&family=Merriweather:wght@400;700&display=swap" rel="stylesheet">
</head>
<body>
  <header id="home">
    <div class="header-content">
      <h1>{{or .Name "Your Name"}}</h1>
      <p class="title">{{or .Title "Your Title"}}</p>
      <div class="social-links">
        {{- if .Email}}
        <a href="mailto:{{.Email}}" class="social-link email">Email</a>
        {{- end}}
        {{- if .LinkedIn}}
        <a href="{{.LinkedIn}}" target="_blank" rel="noopener noreferrer" class="social-link linkedin">LinkedIn</a>
        {{- end}}
        {{- if .GitHub}}
        <a href="{{.GitHub}}" target="_blank" rel="noopener noreferrer" class="social-link github">GitHub</a>
        {{- end}}
      </div>
    </div>
  </header>

  <nav id="navbar">
    <div class="container">
      <a href="#home">Home</a>
      <a href="#about">About</a>
      <a href="#experience">Experience</a>
      <a href="#projects">Projects</a>
      <a href="#contact">Contact</a>
    </div>
  </nav>

  <section id="about" class="section">
    <div class="container">
      <h2 class="section-title">About Me</h2>
      <div class="about-content">
        <div class="about-text">
          {{- if not .About}}
          <p>Write something about yourself here.</p>
          {{- else if .RichText}}
          <div class="rich-text">{{.About}}</div>
          {{- else}}
          <p>{{.About}}</p>
          {{- end}}
        </div>
        <div class="skills">
          <h3>Skills</h3>
          <div class="skills-container">
            {{- range .Skills}}
            <span class="skill-tag">{{.}}</span>
            {{- end}}
          </div>
        </div>
      </div>
    </div>
  </section>

  <section id="experience" class="section">
    <div class="container">
      <h2 class="section-title">Experience</h2>
      <div class="experience-container">
        {{- range .Experiences}}
        <div class="experience-item">
          <div class="experience-header">
            <h3>{{.Position}}</h3>
            <p class="company">{{.Company}}</p>
            <p class="date">{{.Start}} - {{.End}}</p>
          </div>
          {{- if $.RichText}}
          <div class="description rich-text">{{.Description}}</div>
          {{- else}}
          <p class="description">{{.Description}}</p>
          {{- end}}
        </div>
        {{- else}}
        <p>No experience added yet.</p>
        {{- end}}
      </div>

      <h2 class="section-title">Education</h2>
      <div class="education-container">
        {{- range .Education}}
        <div class="education-item">
          <h3>{{.Degree}} in {{.Field}}</h3>
          <p class="institution">{{.Institution}}</p>
          <p class="date">{{.Start}} - {{.End}}</p>
        </div>
        {{- else}}
        <p>No education added yet.</p>
        {{- end}}
      </div>
    </div>
  </section>

  <section id="projects" class="section">
    <div class="container">
      <h2 class="section-title">Projects</h2>
      <div class="projects-container">
        {{- range .Projects}}
        <div class="project-item">
          {{- if .Image}}
          <img src="{{.Image}}" alt="{{.Title}}" class="project-image" loading="lazy">
          {{- end}}
          <div class="project-content">
            <h3>{{.Title}}</h3>
            {{- if $.RichText}}
            <div class="description rich-text">{{.Description}}</div>
            {{- else}}
            <p class="description">{{.Description}}</p>
            {{- end}}
            <div class="technologies">
              {{- range .Technologies}}
              <span class="tech-tag">{{.}}</span>
              {{- end}}
            </div>
            {{- if .Link}}
            <a href="{{.Link}}" target="_blank" rel="noopener noreferrer" class="project-link">View Project</a>
            {{- end}}
          </div>
        </div>
        {{- else}}
        <p>No projects added yet.</p>
        {{- end}}
      </div>
    </div>
  </section>

  <section id="contact" class="section">
    <div class="container">
      <h2 class="section-title">Contact</h2>
      <div class="contact-content">
        <p>Get in touch with me through any of the following methods:</p>
        <div class="contact-info">
          {{- if .Email}}
          <div class="contact-item"><span class="label">Email:</span> <a href="mailto:{{.Email}}">{{.Email}}</a></div>
          {{- end}}
          {{- if .Phone}}
          <div class="contact-item"><span class="label">Phone:</span> {{.Phone}}</div>
          {{- end}}
          {{- if .Location}}
          <div class="contact-item"><span class="label">Location:</span> {{.Location}}</div>
          {{- end}}
        </div>
      </div>
    </div>
  </section>

  <footer>
    <div class="container">
      <p>&copy; {{.Year}} {{or .Name "Your Name"}}. All rights reserved.</p>
    </div>
  </footer>
</body>
</html>
`
