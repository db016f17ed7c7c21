package render

import "text/template"

// deckData fills the outer document template. Slides and Title arrive
// already escaped.
type deckData struct {
	Title       string
	Slides      string
	TotalSlides int
}

var deckTmpl = template.Must(template.New("deck").Parse(deckTemplateHTML))

// deckTemplateHTML is the self-contained document shell. All CSS and JS is
// inline so the output opens from file:// with no network access; the CSP
// meta tag enforces that.
const deckTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta http-equiv="Content-Security-Policy" content="default-src 'none'; style-src 'unsafe-inline'; script-src 'unsafe-inline'; img-src data:;">
    <title>{{.Title}}</title>
    <style>
        :root {
            --bg-dark: #1a1a2e;
            --bg-darker: #16213e;
            --accent: #4a6cf7;
            --accent-light: #6b8cff;
            --user-bg: #e3f2fd;
            --user-border: #2196f3;
            --code-bg: #1e1e1e;
            --code-text: #d4d4d4;
            --text-primary: #333333;
            --text-secondary: #666666;
            --text-light: #ffffff;
            --card-bg: #f8f9fa;
            --border-color: #e0e0e0;
            --success: #4caf50;
            --warning: #ff9800;
            --error: #f44336;
        }

        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif;
            background: #f5f5f5;
            color: var(--text-primary);
            line-height: 1.6;
        }

        .slide-container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
        }

        .slide {
            display: none;
            background: white;
            border-radius: 12px;
            box-shadow: 0 4px 20px rgba(0, 0, 0, 0.1);
            min-height: 80vh;
            overflow: hidden;
        }

        .slide.active {
            display: block;
        }

        /* Title Slide */
        .slide-title {
            background: linear-gradient(135deg, var(--bg-dark) 0%, var(--bg-darker) 100%);
            color: var(--text-light);
            display: flex;
            flex-direction: column;
            justify-content: center;
            align-items: center;
            text-align: center;
            padding: 60px 40px;
        }

        .slide-title h1 {
            font-size: 3rem;
            font-weight: 700;
            margin-bottom: 20px;
            background: linear-gradient(135deg, var(--text-light) 0%, var(--accent-light) 100%);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
        }

        .slide-title .subtitle {
            font-size: 1.4rem;
            opacity: 0.9;
            margin-bottom: 40px;
        }

        /* Content Slides */
        .slide-content {
            padding: 40px;
        }

        .slide-header {
            display: flex;
            justify-content: space-between;
            align-items: center;
            margin-bottom: 30px;
            padding-bottom: 15px;
            border-bottom: 2px solid var(--border-color);
        }

        .turn-label {
            background: var(--accent);
            color: white;
            padding: 8px 20px;
            border-radius: 20px;
            font-weight: 600;
            font-size: 0.9rem;
        }

        .slide-number {
            color: var(--text-secondary);
            font-size: 0.9rem;
        }

        /* User Prompt Box */
        .user-prompt {
            background: var(--user-bg);
            border-left: 4px solid var(--user-border);
            padding: 20px 25px;
            border-radius: 0 8px 8px 0;
            margin-bottom: 25px;
        }

        .user-prompt-label {
            font-size: 0.8rem;
            font-weight: 600;
            color: var(--user-border);
            text-transform: uppercase;
            letter-spacing: 1px;
            margin-bottom: 8px;
        }

        .user-prompt-text {
            font-size: 1.1rem;
            color: var(--text-primary);
            white-space: pre-wrap;
        }

        /* Tool Badges */
        .tools-section {
            margin: 20px 0;
        }

        .tools-label {
            font-size: 0.85rem;
            font-weight: 600;
            color: var(--text-secondary);
            margin-bottom: 10px;
        }

        .tool-badges {
            display: flex;
            flex-wrap: wrap;
            gap: 8px;
        }

        .tool-badge {
            background: var(--bg-dark);
            color: var(--text-light);
            padding: 6px 14px;
            border-radius: 15px;
            font-size: 0.8rem;
            font-family: 'SF Mono', 'Consolas', monospace;
        }

        /* Response Content */
        .response-section {
            margin-top: 25px;
        }

        .response-label {
            font-size: 0.85rem;
            font-weight: 600;
            color: var(--text-secondary);
            margin-bottom: 10px;
        }

        .response-content {
            font-size: 1rem;
            line-height: 1.8;
            color: var(--text-primary);
        }

        .response-content p {
            margin-bottom: 15px;
        }

        .response-content ul, .response-content ol {
            margin: 15px 0;
            padding-left: 25px;
        }

        .response-content li {
            margin-bottom: 8px;
        }

        /* Code Blocks */
        .code-block {
            background: var(--code-bg);
            color: var(--code-text);
            border-radius: 8px;
            padding: 20px;
            margin: 15px 0;
            overflow-x: auto;
            font-family: 'SF Mono', 'Consolas', 'Monaco', monospace;
            font-size: 0.9rem;
            line-height: 1.5;
        }

        .code-block-header {
            display: flex;
            justify-content: space-between;
            align-items: center;
            background: rgba(255, 255, 255, 0.05);
            margin: -20px -20px 15px -20px;
            padding: 10px 20px;
            border-bottom: 1px solid rgba(255, 255, 255, 0.1);
        }

        .code-language {
            color: var(--accent-light);
            font-size: 0.8rem;
            text-transform: uppercase;
        }

        .code-filename {
            color: var(--text-secondary);
            font-size: 0.8rem;
        }

        .code-lines {
            color: var(--accent-light);
            font-size: 0.75rem;
            margin-left: auto;
            opacity: 0.8;
        }

        code {
            font-family: 'SF Mono', 'Consolas', 'Monaco', monospace;
        }

        /* Inline code */
        .inline-code {
            background: rgba(0, 0, 0, 0.06);
            padding: 2px 6px;
            border-radius: 4px;
            font-size: 0.9em;
        }

        /* Summary Slide */
        .summary-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
            gap: 20px;
            margin-top: 30px;
        }

        .summary-card {
            background: var(--card-bg);
            border-radius: 10px;
            padding: 25px;
            border: 1px solid var(--border-color);
        }

        .summary-card h3 {
            font-size: 1.1rem;
            margin-bottom: 15px;
            color: var(--accent);
        }

        .summary-card ul {
            list-style: none;
        }

        .summary-card li {
            padding: 8px 0;
            border-bottom: 1px solid var(--border-color);
            font-size: 0.95rem;
        }

        .summary-card li:last-child {
            border-bottom: none;
        }

        /* Files Section */
        .files-section {
            margin-top: 20px;
        }

        .file-item {
            display: flex;
            align-items: center;
            gap: 10px;
            padding: 8px 12px;
            background: var(--card-bg);
            border-radius: 6px;
            margin-bottom: 8px;
            font-family: 'SF Mono', 'Consolas', monospace;
            font-size: 0.85rem;
        }

        .file-icon {
            color: var(--accent);
        }

        .file-action {
            font-size: 0.75rem;
            padding: 2px 8px;
            border-radius: 10px;
            text-transform: uppercase;
        }

        .file-action.created {
            background: rgba(76, 175, 80, 0.1);
            color: var(--success);
        }

        .file-action.modified {
            background: rgba(255, 152, 0, 0.1);
            color: var(--warning);
        }

        .file-action.deleted {
            background: rgba(244, 67, 54, 0.1);
            color: var(--error);
        }

        /* Navigation */
        .navigation {
            position: fixed;
            bottom: 30px;
            left: 50%;
            transform: translateX(-50%);
            display: flex;
            align-items: center;
            gap: 20px;
            background: white;
            padding: 15px 30px;
            border-radius: 30px;
            box-shadow: 0 4px 20px rgba(0, 0, 0, 0.15);
            z-index: 1000;
        }

        .nav-button {
            background: var(--bg-dark);
            color: white;
            border: none;
            width: 45px;
            height: 45px;
            border-radius: 50%;
            cursor: pointer;
            font-size: 1.2rem;
            display: flex;
            align-items: center;
            justify-content: center;
            transition: all 0.2s ease;
        }

        .nav-button:hover {
            background: var(--accent);
            transform: scale(1.1);
        }

        .nav-button:disabled {
            opacity: 0.3;
            cursor: not-allowed;
            transform: none;
        }

        .nav-counter {
            font-size: 1rem;
            font-weight: 600;
            color: var(--text-primary);
            min-width: 80px;
            text-align: center;
        }

        /* Progress Bar */
        .progress-bar {
            position: fixed;
            top: 0;
            left: 0;
            width: 100%;
            height: 4px;
            background: var(--border-color);
            z-index: 1001;
        }

        .progress-fill {
            height: 100%;
            background: linear-gradient(90deg, var(--accent), var(--accent-light));
            transition: width 0.3s ease;
        }

        /* Keyboard hints */
        .keyboard-hints {
            position: fixed;
            bottom: 100px;
            right: 30px;
            background: rgba(0, 0, 0, 0.7);
            color: white;
            padding: 15px 20px;
            border-radius: 10px;
            font-size: 0.8rem;
            opacity: 0;
            transition: opacity 0.3s ease;
        }

        .keyboard-hints.visible {
            opacity: 1;
        }

        .keyboard-hints kbd {
            background: rgba(255, 255, 255, 0.2);
            padding: 3px 8px;
            border-radius: 4px;
            margin: 0 3px;
        }

        /* Collapsible code blocks */
        .collapsible {
            position: relative;
        }

        .collapsible-toggle {
            display: flex;
            align-items: center;
            justify-content: space-between;
            background: rgba(255, 255, 255, 0.08);
            padding: 8px 15px;
            border-radius: 6px;
            cursor: pointer;
            margin-bottom: 10px;
            transition: background 0.2s ease;
        }

        .collapsible-toggle:hover {
            background: rgba(255, 255, 255, 0.12);
        }

        .collapsible-toggle .toggle-label {
            font-size: 0.85rem;
            color: var(--accent-light);
        }

        .collapsible-toggle .toggle-icon {
            font-size: 0.8rem;
            transition: transform 0.2s ease;
        }

        .collapsible-content {
            max-height: 0;
            overflow: hidden;
            transition: max-height 0.3s ease-out;
        }

        .collapsible.expanded .collapsible-content {
            max-height: 2000px;
        }

        .collapsible.expanded .toggle-icon {
            transform: rotate(180deg);
        }

        /* Terminal output with error highlighting */
        .terminal-output {
            background: #0d1117;
            border-radius: 8px;
            padding: 15px;
            font-family: 'SF Mono', 'Consolas', monospace;
            font-size: 0.85rem;
            line-height: 1.5;
            overflow-x: auto;
        }

        .terminal-line {
            margin: 2px 0;
        }

        .terminal-line.error {
            color: var(--error);
            font-weight: 500;
        }

        .terminal-line.warning {
            color: var(--warning);
        }

        .terminal-line.success {
            color: var(--success);
        }

        .terminal-line.omitted {
            color: #888888;
        }

        /* Session Metadata Grid on Title Slide */
        .session-metadata {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(140px, 1fr));
            gap: 20px;
            margin-top: 40px;
            padding: 25px 30px;
            background: rgba(255, 255, 255, 0.06);
            border-radius: 12px;
            border: 1px solid rgba(255, 255, 255, 0.1);
            max-width: 700px;
        }

        .meta-item {
            text-align: center;
            padding: 10px;
        }

        .meta-label {
            display: block;
            font-size: 0.75rem;
            font-weight: 500;
            text-transform: uppercase;
            letter-spacing: 1.5px;
            color: rgba(255, 255, 255, 0.6);
            margin-bottom: 8px;
        }

        .meta-value {
            display: block;
            font-size: 1rem;
            font-weight: 600;
            color: var(--accent-light);
            word-break: break-word;
        }

        .meta-value.small {
            font-size: 0.9rem;
            font-weight: 500;
        }

        /* Responsive */
        @media (max-width: 768px) {
            .slide-container {
                padding: 10px;
            }

            .slide-content {
                padding: 20px;
            }

            .slide-title h1 {
                font-size: 2rem;
            }

            .navigation {
                padding: 10px 20px;
            }

            .nav-button {
                width: 40px;
                height: 40px;
            }
        }
    </style>
</head>
<body>
    <div class="progress-bar">
        <div class="progress-fill" id="progress"></div>
    </div>

    <div class="slide-container">
        {{.Slides}}
    </div>

    <div class="navigation">
        <button class="nav-button" id="prev-btn" onclick="prevSlide()">&#8592;</button>
        <span class="nav-counter" id="counter">1 / {{.TotalSlides}}</span>
        <button class="nav-button" id="next-btn" onclick="nextSlide()">&#8594;</button>
    </div>

    <div class="keyboard-hints" id="hints">
        Use <kbd>&#8592;</kbd> <kbd>&#8594;</kbd> or <kbd>Space</kbd> to navigate
    </div>

    <script>
        let currentSlide = 0;
        const slides = document.querySelectorAll('.slide');
        const totalSlides = slides.length;
        const counter = document.getElementById('counter');
        const progress = document.getElementById('progress');
        const prevBtn = document.getElementById('prev-btn');
        const nextBtn = document.getElementById('next-btn');
        const hints = document.getElementById('hints');

        function showSlide(index) {
            if (index < 0) index = 0;
            if (index >= totalSlides) index = totalSlides - 1;

            slides.forEach((slide, i) => {
                slide.classList.toggle('active', i === index);
            });

            currentSlide = index;
            counter.textContent = (index + 1) + ' / ' + totalSlides;
            progress.style.width = (((index + 1) / totalSlides) * 100) + '%';

            prevBtn.disabled = index === 0;
            nextBtn.disabled = index === totalSlides - 1;
        }

        function nextSlide() {
            showSlide(currentSlide + 1);
        }

        function prevSlide() {
            showSlide(currentSlide - 1);
        }

        document.addEventListener('keydown', (e) => {
            if (e.key === 'ArrowRight' || e.key === ' ') {
                e.preventDefault();
                nextSlide();
            } else if (e.key === 'ArrowLeft') {
                e.preventDefault();
                prevSlide();
            } else if (e.key === 'Home') {
                e.preventDefault();
                showSlide(0);
            } else if (e.key === 'End') {
                e.preventDefault();
                showSlide(totalSlides - 1);
            }
        });

        setTimeout(() => {
            hints.classList.add('visible');
            setTimeout(() => {
                hints.classList.remove('visible');
            }, 3000);
        }, 1000);

        function toggleCollapsible(element) {
            const collapsible = element.closest('.collapsible');
            if (collapsible) {
                collapsible.classList.toggle('expanded');
            }
        }

        document.querySelectorAll('.collapsible-toggle').forEach(toggle => {
            toggle.addEventListener('click', function() {
                toggleCollapsible(this);
            });
        });

        showSlide(0);
    </script>
</body>
</html>
`
