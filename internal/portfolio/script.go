package portfolio

// RenderScript returns the page behavior script. It takes no input: the same
// script serves every profile and template.
func RenderScript() string {
	return scriptContent
}

const scriptContent = `(function() {
  'use strict';

  // ============ Smooth scrolling ============
  var navLinks = document.querySelectorAll('nav a');

  navLinks.forEach(function(anchor) {
    anchor.addEventListener('click', function(e) {
      var target = document.querySelector(this.getAttribute('href'));
      if (!target) return;
      e.preventDefault();
      window.scrollTo({
        top: target.offsetTop - 60,
        behavior: 'smooth'
      });
    });
  });

  // ============ Section reveal ============
  var sections = document.querySelectorAll('.section');

  if ('IntersectionObserver' in window) {
    var sectionObserver = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (entry.isIntersecting) {
          entry.target.classList.add('visible');
        }
      });
    }, {
      root: null,
      threshold: 0.1,
      rootMargin: '-50px'
    });

    sections.forEach(function(section) {
      sectionObserver.observe(section);
    });
  } else {
    sections.forEach(function(section) {
      section.classList.add('visible');
    });
  }

  // ============ Active navigation link ============
  function updateActiveNavLink() {
    var fromTop = window.scrollY + 70;

    navLinks.forEach(function(link) {
      var section = link.hash ? document.querySelector(link.hash) : null;
      if (!section) return;

      if (section.offsetTop <= fromTop && section.offsetTop + section.offsetHeight > fromTop) {
        link.classList.add('active');
      } else {
        link.classList.remove('active');
      }
    });
  }

  window.addEventListener('scroll', updateActiveNavLink);
  window.addEventListener('load', updateActiveNavLink);

  // ============ Header particles ============
  var particleStyle = document.createElement('style');
  particleStyle.textContent =
    '@keyframes particle {' +
    '  0% { transform: scale(0) translate(0, 0); opacity: 0; }' +
    '  50% { opacity: 1; }' +
    '  100% { transform: scale(1) translate(100px, -100px); opacity: 0; }' +
    '}';
  document.head.appendChild(particleStyle);

  function createParticles() {
    var header = document.querySelector('header');
    if (!header) return;

    var container = document.createElement('div');
    container.className = 'particles';
    container.style.cssText =
      'position: absolute; top: 0; left: 0; width: 100%; height: 100%; overflow: hidden; z-index: 0;';

    for (var i = 0; i < 50; i++) {
      var particle = document.createElement('div');
      var size = Math.random() * 10 + 5;
      particle.style.cssText =
        'position: absolute; background: rgba(255, 255, 255, 0.1); border-radius: 50%;' +
        ' pointer-events: none; transform: scale(0); animation: particle 3s infinite;' +
        ' animation-delay: ' + (Math.random() * 3) + 's;';
      particle.style.width = size + 'px';
      particle.style.height = size + 'px';
      particle.style.left = (Math.random() * 100) + '%';
      particle.style.top = (Math.random() * 100) + '%';
      container.appendChild(particle);
    }

    header.appendChild(container);
  }

  window.addEventListener('load', createParticles);
})();
`
